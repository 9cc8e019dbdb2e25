package dto

import (
	"fieldserve/internal/domains/booking/model"
	pricingModel "fieldserve/internal/domains/pricing/model"
	"fieldserve/shared"
	"fieldserve/shared/constant"
	gDto "fieldserve/shared/dto"
	"fieldserve/shared/timezone"
	"time"
)

type CreateBookingRequest struct {
	CustomerID         string `json:"customer_id"          validate:"omitempty"`
	ServiceID          string `json:"service_id"           validate:"required"`
	ServiceTypeID      string `json:"service_type_id"      validate:"omitempty"`
	Pincode            string `json:"pincode"              validate:"required,pincode"`
	Address            string `json:"address"              validate:"required,max=500"`
	PreferredDate      string `json:"preferred_date"       validate:"required,businessdate"`
	PreferredStartTime string `json:"preferred_start_time" validate:"required,clock"`
	PreferredEndTime   string `json:"preferred_end_time"   validate:"required,clock"`
	DiscountCode       string `json:"discount_code"        validate:"omitempty,max=50"`
}

// Window resolves the request's date and clock times into a business date and a time range.
func (c *CreateBookingRequest) Window() (date, start, end time.Time, err error) {
	return ParseWindow(c.PreferredDate, c.PreferredStartTime, c.PreferredEndTime)
}

type AssignBookingRequest struct {
	ProviderID string `json:"provider_id" validate:"required"`
}

type CompleteBookingRequest struct {
	// FinalBasePrice replaces the frozen base price when the work differed from the estimate.
	FinalBasePrice string `json:"final_base_price" validate:"omitempty,decimal=nonnegative,cents"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type HoldBookingRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type ResumeBookingRequest struct {
	ProviderID string `json:"provider_id" validate:"omitempty"`
}

type RejectBookingRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type ProposeRescheduleRequest struct {
	PreferredDate      string `json:"preferred_date"       validate:"required,businessdate"`
	PreferredStartTime string `json:"preferred_start_time" validate:"required,clock"`
	PreferredEndTime   string `json:"preferred_end_time"   validate:"required,clock"`
	Reason             string `json:"reason"               validate:"omitempty,max=500"`
}

func (p *ProposeRescheduleRequest) Window() (date, start, end time.Time, err error) {
	return ParseWindow(p.PreferredDate, p.PreferredStartTime, p.PreferredEndTime)
}

type RespondRescheduleRequest struct {
	Accept *bool  `json:"accept" validate:"required"`
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type RateBookingRequest struct {
	Rating   int    `json:"rating"   validate:"required,min=1,max=5"`
	Feedback string `json:"feedback" validate:"omitempty,max=1000"`
}

// ParseWindow combines a business date and two HH:MM clock times in the application timezone.
func ParseWindow(dateValue, startValue, endValue string) (date, start, end time.Time, err error) {
	date, err = timezone.ParseBusinessDate(dateValue)
	if err != nil {
		return date, start, end, err
	}

	start, err = timezone.Parse(constant.BusinessDateFormat+" "+constant.ClockFormat, dateValue+" "+startValue)
	if err != nil {
		return date, start, end, err
	}

	end, err = timezone.Parse(constant.BusinessDateFormat+" "+constant.ClockFormat, dateValue+" "+endValue)
	if err != nil {
		return date, start, end, err
	}

	return date, start, end, nil
}

type BookingResponse struct {
	ID                  string                       `json:"id"`
	CustomerID          string                       `json:"customer_id"`
	ServiceID           string                       `json:"service_id"`
	ServiceTypeID       string                       `json:"service_type_id,omitempty"`
	Pincode             string                       `json:"pincode"`
	Address             string                       `json:"address"`
	AssignedProviderID  string                       `json:"assigned_provider_id,omitempty"`
	Status              string                       `json:"status"`
	PreferredDate       string                       `json:"preferred_date"`
	PreferredStartAt    string                       `json:"preferred_start_at"`
	PreferredEndAt      string                       `json:"preferred_end_at"`
	EstimatedPrice      string                       `json:"estimated_price"`
	PriceBreakdown      pricingModel.PriceBreakdown  `json:"price_breakdown"`
	FinalPrice          string                       `json:"final_price,omitempty"`
	FinalBreakdown      *pricingModel.PriceBreakdown `json:"final_breakdown,omitempty"`
	CancellationReason  string                       `json:"cancellation_reason,omitempty"`
	CancelledByRole     string                       `json:"cancelled_by_role,omitempty"`
	HoldReason          string                       `json:"hold_reason,omitempty"`
	RejectReason        string                       `json:"reject_reason,omitempty"`
	RescheduleStartAt   string                       `json:"reschedule_start_at,omitempty"`
	RescheduleEndAt     string                       `json:"reschedule_end_at,omitempty"`
	RescheduleExpiresAt string                       `json:"reschedule_expires_at,omitempty"`
	Rating              int                          `json:"rating,omitempty"`
	Feedback            string                       `json:"feedback,omitempty"`
	gDto.Metadata
}

// FromModel renders mod as seen at now, so a lapsed reschedule proposal reads as cancelled.
func (r *BookingResponse) FromModel(mod model.Booking, now time.Time) {
	r.ID = mod.ID
	r.CustomerID = mod.CustomerID
	r.ServiceID = mod.ServiceID
	r.ServiceTypeID = deref(mod.ServiceTypeID)
	r.Pincode = mod.Pincode
	r.Address = mod.Address
	r.AssignedProviderID = mod.ProviderID()
	r.Status = string(mod.EffectiveStatus(now))
	r.PreferredDate = timezone.Format(mod.PreferredDate, constant.BusinessDateFormat)
	r.PreferredStartAt = timezone.Format(mod.PreferredStartAt, constant.DateFormat)
	r.PreferredEndAt = timezone.Format(mod.PreferredEndAt, constant.DateFormat)
	r.EstimatedPrice = mod.EstimatedPrice.StringFixed(2)
	r.PriceBreakdown = mod.PriceBreakdown
	r.FinalBreakdown = mod.FinalBreakdown
	r.CancellationReason = deref(mod.CancellationReason)
	r.CancelledByRole = deref(mod.CancelledByRole)
	r.HoldReason = deref(mod.HoldReason)
	r.RejectReason = deref(mod.RejectReason)
	r.RescheduleStartAt = formatTime(mod.RescheduleStartAt)
	r.RescheduleEndAt = formatTime(mod.RescheduleEndAt)
	r.RescheduleExpiresAt = formatTime(mod.RescheduleExpiresAt)
	r.Feedback = deref(mod.Feedback)
	r.Metadata.FromModel(mod.Metadata)

	if mod.FinalPrice.Valid {
		r.FinalPrice = mod.FinalPrice.Decimal.StringFixed(2)
	}

	if mod.Rating != nil {
		r.Rating = *mod.Rating
	}

	if mod.RescheduleExpired(now) {
		r.CancellationReason = "reschedule proposal expired"
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int, now time.Time) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod, now)
	}
}

type HistoryResponse struct {
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	ActorID    string `json:"actor_id"`
	ActorRole  string `json:"actor_role"`
	Reason     string `json:"reason,omitempty"`
	ProviderID string `json:"provider_id,omitempty"`
	CreatedAt  string `json:"created_at"`
}

func (r *HistoryResponse) FromModel(mod model.History) {
	r.FromStatus = string(mod.FromStatus)
	r.ToStatus = string(mod.ToStatus)
	r.ActorID = mod.ActorID
	r.ActorRole = mod.ActorRole
	r.Reason = mod.Reason
	r.ProviderID = deref(mod.ProviderID)
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
}

type DashboardResponse struct {
	ProviderID string         `json:"provider_id,omitempty"`
	Counts     map[string]int `json:"counts"`
	Total      int            `json:"total"`
}

// FromModels fills every known status so absent ones read as zero.
func (r *DashboardResponse) FromModels(providerID string, counts []model.StatusCount) {
	r.ProviderID = providerID
	r.Counts = make(map[string]int, len(model.AllStatuses()))

	for _, status := range model.AllStatuses() {
		r.Counts[string(status)] = 0
	}

	for _, count := range counts {
		r.Counts[string(count.Status)] += count.Total
		r.Total += count.Total
	}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}

func formatTime(value *time.Time) string {
	if value == nil {
		return ""
	}

	return timezone.Format(*value, constant.DateFormat)
}
