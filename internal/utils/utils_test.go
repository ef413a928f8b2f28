package utils

import (
	"testing"
	"time"
)

func TestPaginate_ThirteenItemsPageSizeSix(t *testing.T) {
	items := make([]int, 13)
	for i := range items {
		items[i] = i + 1
	}

	first := Paginate(items, 1, 6)
	if first.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", first.TotalPages)
	}
	if len(first.Items) != 6 {
		t.Fatalf("expected 6 items on first page, got %d", len(first.Items))
	}

	last := Paginate(items, 3, 6)
	if len(last.Items) != 1 || last.Items[0] != 13 {
		t.Fatalf("expected last page to hold only item 13, got %#v", last.Items)
	}
}

func TestPaginate_ClampsPage(t *testing.T) {
	items := []string{"a", "b", "c"}

	if p := Paginate(items, 0, 2); p.Page != 1 || len(p.Items) != 2 {
		t.Fatalf("page 0 should clamp to 1, got %+v", p)
	}
	if p := Paginate(items, 9, 2); p.Page != 2 || len(p.Items) != 1 {
		t.Fatalf("page 9 should clamp to last, got %+v", p)
	}
	if p := Paginate([]string{}, 1, 2); p.TotalPages != 1 || len(p.Items) != 0 {
		t.Fatalf("empty list should have one empty page, got %+v", p)
	}
	if p := Paginate(items, 1, 0); p.PageSize != DefaultPageSize {
		t.Fatalf("expected default page size, got %d", p.PageSize)
	}
}

func TestContainsFold_VietnameseDiacritics(t *testing.T) {
	if !ContainsFold("Tour Đà Lạt 3N2Đ", "đà lạt") {
		t.Fatal("expected 'đà lạt' to match 'Tour Đà Lạt 3N2Đ'")
	}
	if !ContainsFold("Tour Đà Lạt 3N2Đ", "da lat") {
		t.Fatal("expected unaccented query to match")
	}
	if ContainsFold("Tour Hà Nội", "đà lạt") {
		t.Fatal("unexpected match")
	}
	if !ContainsFold("anything", "  ") {
		t.Fatal("blank query should match everything")
	}
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("A. B. C.")
	if len(got) != 3 || got[0] != "A" || got[2] != "C" {
		t.Fatalf("unexpected bullets: %#v", got)
	}
}

func TestSplitParagraphs(t *testing.T) {
	got := SplitParagraphs("first\r\n\r\n second \nthird")
	if len(got) != 3 || got[1] != "second" {
		t.Fatalf("unexpected paragraphs: %#v", got)
	}
}

func TestFormatVND(t *testing.T) {
	cases := map[int64]string{
		0:        "0 ₫",
		45000:    "45.000 ₫",
		2000000:  "2.000.000 ₫",
		-1500000: "-1.500.000 ₫",
	}
	for in, want := range cases {
		if got := FormatVND(in); got != want {
			t.Errorf("FormatVND(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestParseVND(t *testing.T) {
	got, err := ParseVND("45.000 ₫")
	if err != nil || got != 45000 {
		t.Fatalf("ParseVND = %d, %v", got, err)
	}
	if _, err := ParseVND("  "); err == nil {
		t.Fatal("expected error for blank amount")
	}
}

func TestIsThousandMultiple(t *testing.T) {
	if !IsThousandMultiple(45000) || !IsThousandMultiple(0) {
		t.Fatal("expected multiples of 1000 to pass")
	}
	if IsThousandMultiple(45500) || IsThousandMultiple(-1000) {
		t.Fatal("expected non-multiples and negatives to fail")
	}
}

func TestNotBeforeToday(t *testing.T) {
	restore := Now
	defer func() { Now = restore }()
	Now = func() time.Time { return time.Date(2026, 10, 16, 15, 0, 0, 0, time.Local) }

	if ok, _ := NotBeforeToday("2026-10-16"); !ok {
		t.Fatal("today should be allowed")
	}
	if ok, _ := NotBeforeToday("2026-10-15"); ok {
		t.Fatal("yesterday should be rejected")
	}
	if _, err := NotBeforeToday("16/10/2026"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestMask(t *testing.T) {
	if got := Mask("lan@example.com"); got != "lan@****" {
		t.Fatalf("Mask = %q", got)
	}
	if got := Mask("abc"); got != "****" {
		t.Fatalf("Mask short = %q", got)
	}
}
