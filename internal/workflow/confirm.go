package workflow

import "context"

// ConfirmDialog guards a destructive action behind explicit confirmation.
type ConfirmDialog struct {
	Dialog    Dialog
	OnConfirm func(ctx context.Context) error
}

// NewConfirmDialog returns an open confirmation dialog for action.
func NewConfirmDialog(action func(ctx context.Context) error) *ConfirmDialog {
	c := &ConfirmDialog{OnConfirm: action}
	_ = c.Dialog.Show()
	return c
}

// Resolve runs the action only when confirmed. The dialog closes either way.
func (c *ConfirmDialog) Resolve(ctx context.Context, confirmed bool) (ran bool, err error) {
	defer c.Dialog.Dismiss()
	if !confirmed || c.OnConfirm == nil {
		return false, nil
	}
	return true, c.OnConfirm(ctx)
}
