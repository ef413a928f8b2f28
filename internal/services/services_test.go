package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tripwise/internal/apiclient"
	"tripwise/internal/domain"
	"tripwise/internal/domain/models"
	"tripwise/internal/repositories"
	"tripwise/internal/session"
	"tripwise/internal/utils"
	"tripwise/internal/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T, mux *http.ServeMux) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL, 2*time.Second)
}

func writeData(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"data": v, "message": "ok"})
}

var sampleBookings = []models.Booking{
	{ID: 1, TourName: "Tour Đà Lạt 3N2Đ", Status: models.BookingPaid},
	{ID: 2, TourName: "Tour Hạ Long 2N1Đ", Status: models.BookingPending},
	{ID: 3, TourName: "Đà Lạt mộng mơ", Status: models.BookingPending},
}

func TestFilterBookings_FoldSearchAndStatus(t *testing.T) {
	got := FilterBookings(sampleBookings, ListQuery{Q: "đà lạt"})
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)

	got = FilterBookings(sampleBookings, ListQuery{Q: "da lat", Status: models.BookingPending})
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)

	assert.Len(t, FilterBookings(sampleBookings, ListQuery{}), 3)
}

func TestBookingService_ListPaginates(t *testing.T) {
	var many []models.Booking
	for i := 1; i <= 13; i++ {
		many = append(many, models.Booking{ID: int64(i), TourName: "Tour", Status: models.BookingPaid})
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /bookings/me", func(w http.ResponseWriter, r *http.Request) { writeData(w, many) })
	svc := BookingService{API: newBackend(t, mux)}

	page, err := svc.List(context.Background(), apiclient.Auth{}, ListQuery{Page: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 13, page.TotalItems)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(13), page.Items[0].ID)
}

func TestBookingService_UpdateGuestsOnlyWhilePending(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /bookings/1", func(w http.ResponseWriter, r *http.Request) { writeData(w, sampleBookings[0]) })
	mux.HandleFunc("PUT /bookings/1", func(w http.ResponseWriter, r *http.Request) {
		t.Error("paid booking must not be updated")
	})
	svc := BookingService{API: newBackend(t, mux)}

	_, err := svc.UpdateGuests(context.Background(), apiclient.Auth{}, 1, models.GuestUpdate{Adults: 2})
	assert.True(t, domain.IsConflict(err), "got %v", err)

	_, err = svc.UpdateGuests(context.Background(), apiclient.Auth{}, 1, models.GuestUpdate{Adults: 0})
	fields, ok := domain.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, "adults", fields.First())
}

func TestBookingService_CreateRejectsPastDeparture(t *testing.T) {
	prev := utils.Now
	utils.Now = func() time.Time { return time.Date(2026, 6, 1, 12, 0, 0, 0, time.Local) }
	t.Cleanup(func() { utils.Now = prev })

	svc := BookingService{API: apiclient.New("http://127.0.0.1:1", time.Second)}
	_, err := svc.Create(context.Background(), apiclient.Auth{}, models.BookingInput{TourID: 1, Adults: 1, DepartureDate: "2026-05-30"})
	fields, ok := domain.AsFieldErrors(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, "departureDate", fields.First())
}

func TestBookingService_ConfirmRefundClosesAndRefetches(t *testing.T) {
	var sent models.RefundRequest
	mux := http.NewServeMux()
	mux.HandleFunc("POST /bookings/1/refund", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /bookings/me", func(w http.ResponseWriter, r *http.Request) { writeData(w, sampleBookings) })
	svc := BookingService{API: newBackend(t, mux)}

	out, err := svc.ConfirmRefund(context.Background(), apiclient.Auth{}, 1,
		RefundInput{RefundMethod: "momo", CancelReason: "Bận việc "}, ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, workflow.Closed, out.Dialog)
	require.NotNil(t, out.Bookings)
	assert.Equal(t, 3, out.Bookings.TotalItems)
	assert.Equal(t, models.RefundRequest{BookingID: 1, CancelReason: "Bận việc ", RefundMethod: "momo"}, sent)
}

func TestBookingService_ConfirmRefundFailureStillCloses(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /bookings/1/refund", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Booking đã quá hạn hủy"}`))
	})
	svc := BookingService{API: newBackend(t, mux)}

	out, err := svc.ConfirmRefund(context.Background(), apiclient.Auth{}, 1,
		RefundInput{RefundMethod: "momo", CancelReason: "x"}, ListQuery{})
	apiErr, ok := apiclient.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "Booking đã quá hạn hủy", apiErr.Message)
	assert.Equal(t, workflow.Closed, out.Dialog)
	assert.Nil(t, out.Bookings)
}

func TestRefundPolicy_StaticTiers(t *testing.T) {
	var got []int
	for _, tier := range RefundPolicy() {
		got = append(got, tier.DeductionPercent)
	}
	assert.Equal(t, []int{10, 50, 70, 100}, got)
}

func TestNewPlanCard(t *testing.T) {
	card := NewPlanCard(models.Plan{ID: 2, Name: "Explorer", Price: 45000, Description: "A. B. C."})
	assert.Equal(t, "45.000 ₫", card.PriceLabel)
	assert.Equal(t, []string{"A", "B", "C"}, card.Features)
}

func TestNormalizeTour(t *testing.T) {
	in := models.TourInput{
		Name:       "  Tour   Sapa ",
		Location:   "Lào Cai",
		PriceTiers: []models.PriceTier{{Label: "Adult", Price: 1500000}},
		Itinerary: []models.Day{
			{DayNumber: 7, Activities: []models.Activity{{Order: 4, Title: "Fansipan", Cost: 750000}, {Title: "Chợ đêm", Cost: 0}}},
			{DayNumber: 2, Activities: []models.Activity{{Title: "Bản Cát Cát", Cost: 100000}}},
		},
	}
	out, err := NormalizeTour(in)
	require.NoError(t, err)
	assert.Equal(t, "Tour Sapa", out.Name)
	assert.Equal(t, 1, out.Itinerary[0].DayNumber)
	assert.Equal(t, 2, out.Itinerary[1].DayNumber)
	assert.Equal(t, 2, out.Itinerary[0].Activities[1].Order)

	in.PriceTiers[0].Price = 1500500
	in.Itinerary = append(in.Itinerary, models.Day{})
	_, err = NormalizeTour(in)
	fields, ok := domain.AsFieldErrors(err)
	require.True(t, ok)
	assert.True(t, fields.Has("priceTiers[0].price"))
	assert.True(t, fields.Has("itinerary[2].activities"))
}

func TestSearchTours_SortAndFold(t *testing.T) {
	tours := []models.Tour{
		{ID: 1, Name: "Huế cổ kính", Location: "Huế", PriceTiers: []models.PriceTier{{Price: 3000000}}},
		{ID: 2, Name: "Đà Nẵng biển xanh", Location: "Đà Nẵng", PriceTiers: []models.PriceTier{{Price: 1000000}}},
		{ID: 3, Name: "Bà Nà Hills", Location: "Đà Nẵng", PriceTiers: []models.PriceTier{{Price: 2000000}}},
	}
	got, err := SearchTours(tours, TourQuery{Location: "da nang", Sort: SortPriceDesc})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)

	got, err = SearchTours(tours, TourQuery{})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, []int64{got[0].ID, got[1].ID, got[2].ID})

	_, err = SearchTours(tours, TourQuery{Sort: "rating"})
	assert.True(t, domain.IsValidation(err))
	var ve domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "sort", ve.Field)
}

func TestPaymentService_LandingPathIsTakenOnce(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /payments", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, models.PaymentLink{OrderCode: "OC1", CheckoutURL: "https://pay.example/OC1"})
	})
	mux.HandleFunc("GET /payments/OC1", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, models.PaymentStatus{OrderCode: "OC1", Status: "PAID"})
	})
	store := session.NewMemoryStore()
	require.NoError(t, store.Create(context.Background(), models.Session{ID: "s1", AccessToken: "a", ExpiresAt: time.Now().Add(time.Hour)}))
	svc := PaymentService{API: newBackend(t, mux), Sessions: store}
	ctx := context.Background()

	start, err := svc.StartBooking(ctx, apiclient.Auth{}, "s1", 7, "/bookings/7")
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/OC1", start.RedirectURL)

	ret, err := svc.Return(ctx, apiclient.Auth{}, "s1", "OC1")
	require.NoError(t, err)
	assert.True(t, ret.Paid)
	assert.Equal(t, "/bookings/7", ret.Redirect)

	ret, err = svc.Return(ctx, apiclient.Auth{}, "s1", "OC1")
	require.NoError(t, err)
	assert.Equal(t, defaultLandingPath, ret.Redirect)

	_, err = svc.StartBooking(ctx, apiclient.Auth{}, "s1", 7, "//evil.example")
	assert.True(t, domain.IsValidation(err))
}

func TestPaymentService_FailedStatusKeepsLandingPath(t *testing.T) {
	statusCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("POST /payments", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, models.PaymentLink{OrderCode: "OC1", CheckoutURL: "https://pay.example/OC1"})
	})
	mux.HandleFunc("GET /payments/OC1", func(w http.ResponseWriter, r *http.Request) {
		statusCalls++
		if statusCalls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		writeData(w, models.PaymentStatus{OrderCode: "OC1", Status: "PAID"})
	})
	store := session.NewMemoryStore()
	require.NoError(t, store.Create(context.Background(), models.Session{ID: "s1", AccessToken: "a", ExpiresAt: time.Now().Add(time.Hour)}))
	svc := PaymentService{API: newBackend(t, mux), Sessions: store}
	ctx := context.Background()

	_, err := svc.StartBooking(ctx, apiclient.Auth{}, "s1", 7, "/bookings/7")
	require.NoError(t, err)

	_, err = svc.Return(ctx, apiclient.Auth{}, "s1", "OC1")
	require.Error(t, err)

	ret, err := svc.Return(ctx, apiclient.Auth{}, "s1", "OC1")
	require.NoError(t, err)
	assert.True(t, ret.Paid)
	assert.Equal(t, "/bookings/7", ret.Redirect)
}

func TestAdminService_PlanDeleteNeedsConfirmation(t *testing.T) {
	svc := AdminService{Plans: repositories.NewPlanRepository(repositories.MockPlans())}
	ctx := context.Background()

	res, err := svc.DeletePlan(ctx, 1, false)
	require.NoError(t, err)
	assert.False(t, res.Deleted)
	assert.Equal(t, workflow.Closed, res.Dialog)
	_, err = svc.Plan(1)
	require.NoError(t, err)

	res, err = svc.DeletePlan(ctx, 1, true)
	require.NoError(t, err)
	assert.True(t, res.Deleted)
	_, err = svc.Plan(1)
	assert.True(t, domain.IsNotFound(err))
}

func TestAdminService_PlanValidationAndList(t *testing.T) {
	svc := AdminService{Plans: repositories.NewPlanRepository(repositories.MockPlans())}

	_, err := svc.SavePlan(0, models.PlanInput{Name: "Pro", Price: 45500, MaxDailyRequests: 0, Description: "x"})
	fields, ok := domain.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, "price", fields.First())
	assert.True(t, fields.Has("maxDailyRequests"))

	page := svc.ListPlans(ListQuery{Q: "explo"})
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Explorer", page.Items[0].Item.Name)
	assert.Equal(t, []domain.Action{domain.ActionView, domain.ActionEdit, domain.ActionDelete}, page.Items[0].Actions)
}

func TestNewBlogView(t *testing.T) {
	v := NewBlogView(models.Blog{Name: "Khám phá Đà Lạt", Content: "Đoạn một.\r\n\r\nĐoạn hai."})
	assert.Equal(t, "kham-pha-da-lat", v.Slug)
	assert.Equal(t, []string{"Đoạn một.", "Đoạn hai."}, v.Paragraphs)
}

func TestAuthService_SignupFlow(t *testing.T) {
	var otpCalls []apiclient.SignupOTPRequest
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register/otp", func(w http.ResponseWriter, r *http.Request) {
		var in apiclient.SignupOTPRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		otpCalls = append(otpCalls, in)
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /auth/register/verify", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, apiclient.Tokens{AccessToken: "acc", RefreshToken: "ref", User: apiclient.TokenUser{ID: 5, Username: "anh", Role: "user"}})
	})
	store := session.NewMemoryStore()
	svc := AuthService{
		API:      newBackend(t, mux),
		Sessions: session.NewManager(store, "0123456789abcdef0123", time.Hour),
		Wizards:  workflow.NewWizardStore(10 * time.Minute),
	}
	ctx := context.Background()
	a := apiclient.Auth{DeviceID: "dev-1"}
	form := workflow.SignupForm{Email: "an@example.com", Username: "anh", Password: "password1", ConfirmPassword: "password1"}

	st, err := svc.StartSignup(ctx, a, form)
	require.NoError(t, err)
	assert.Equal(t, workflow.StepOTPSent, st.Step)

	_, err = svc.ResendSignupOTP(ctx, a, st.RequestID)
	require.NoError(t, err)
	require.Len(t, otpCalls, 2)
	assert.Equal(t, otpCalls[0].RequestID, otpCalls[1].RequestID)

	sess, cookie, err := svc.VerifySignup(ctx, a, st.RequestID, "123456")
	require.NoError(t, err)
	assert.NotEmpty(t, cookie)
	assert.Equal(t, "dev-1", sess.DeviceID)
	assert.Equal(t, int64(5), sess.UserID)

	_, err = svc.ResendSignupOTP(ctx, a, st.RequestID)
	assert.True(t, domain.IsNotFound(err), "finished wizard should be gone, got %v", err)
}

func TestAuthService_StartSignupTrimsBeforeValidating(t *testing.T) {
	var got apiclient.SignupOTPRequest
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register/otp", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})
	svc := AuthService{
		API:      newBackend(t, mux),
		Sessions: session.NewManager(session.NewMemoryStore(), "0123456789abcdef0123", time.Hour),
		Wizards:  workflow.NewWizardStore(10 * time.Minute),
	}
	form := workflow.SignupForm{Email: "  an@example.com ", Username: " anh ", Password: "password1", ConfirmPassword: "password1"}

	st, err := svc.StartSignup(context.Background(), apiclient.Auth{}, form)
	require.NoError(t, err)
	assert.Equal(t, workflow.StepOTPSent, st.Step)
	assert.Equal(t, "an@example.com", st.Email)
	assert.Equal(t, "an@example.com", got.Email)
	assert.Equal(t, "anh", got.Username)
}
