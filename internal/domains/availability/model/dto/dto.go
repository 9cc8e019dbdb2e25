package dto

import (
	"fieldserve/internal/domains/availability/model"
	"fieldserve/shared"
	"fieldserve/shared/constant"
	gDto "fieldserve/shared/dto"
	"fieldserve/shared/timezone"
	"time"
)

type CheckInRequest struct {
	ProviderID   string `json:"provider_id"   validate:"omitempty"`
	Pincode      string `json:"pincode"       validate:"required,pincode"`
	BusinessDate string `json:"business_date" validate:"omitempty,businessdate"`
}

type CheckOutRequest struct {
	ProviderID   string `json:"provider_id"   validate:"omitempty"`
	BusinessDate string `json:"business_date" validate:"omitempty,businessdate"`
}

type CreateLeaveRequest struct {
	ProviderID string `json:"provider_id" validate:"omitempty"`
	StartDate  string `json:"start_date"  validate:"required,businessdate"`
	EndDate    string `json:"end_date"    validate:"required,businessdate"`
	Reason     string `json:"reason"      validate:"required,max=500"`
}

type AvailabilityQuery struct {
	ServiceID    string `validate:"required"`
	Pincode      string `validate:"required,pincode"`
	BusinessDate string `validate:"omitempty,businessdate"`
}

// BusinessDateOrToday parses value, defaulting to the current business date when empty.
func BusinessDateOrToday(value string) (time.Time, error) {
	if value == constant.Empty {
		return timezone.Today(), nil
	}

	return timezone.ParseBusinessDate(value)
}

type WindowResponse struct {
	ID           string `json:"id"`
	ProviderID   string `json:"provider_id"`
	Pincode      string `json:"pincode"`
	BusinessDate string `json:"business_date"`
	CheckedInAt  string `json:"checked_in_at"`
	CheckedOutAt string `json:"checked_out_at,omitempty"`
	Open         bool   `json:"open"`
}

func (r *WindowResponse) FromModel(mod model.Window) {
	r.ID = mod.ID
	r.ProviderID = mod.ProviderID
	r.Pincode = mod.Pincode
	r.BusinessDate = timezone.Format(mod.BusinessDate, constant.BusinessDateFormat)
	r.CheckedInAt = timezone.Format(mod.CheckedInAt, constant.DateFormat)
	r.Open = mod.IsOpen()

	if mod.CheckedOutAt != nil {
		r.CheckedOutAt = timezone.Format(*mod.CheckedOutAt, constant.DateFormat)
	}
}

type GetWindowsResponse struct {
	Windows   []WindowResponse `json:"windows"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetWindowsResponse) FromModels(models []model.Window, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Windows = make([]WindowResponse, len(models))
	for i, mod := range models {
		r.Windows[i].FromModel(mod)
	}
}

type WorklistItemResponse struct {
	BookingID        string `json:"booking_id"`
	CustomerID       string `json:"customer_id"`
	ServiceID        string `json:"service_id"`
	Pincode          string `json:"pincode"`
	Status           string `json:"status"`
	PreferredDate    string `json:"preferred_date"`
	PreferredStartAt string `json:"preferred_start_at"`
}

type LeaveResponse struct {
	ID         string                 `json:"id"`
	ProviderID string                 `json:"provider_id"`
	StartDate  string                 `json:"start_date"`
	EndDate    string                 `json:"end_date"`
	Reason     string                 `json:"reason"`
	Status     string                 `json:"status"`
	Worklist   []WorklistItemResponse `json:"reassignment_worklist,omitempty"`
	gDto.Metadata
}

func (r *LeaveResponse) FromModel(mod model.Leave, worklist []model.WorklistItem) {
	r.ID = mod.ID
	r.ProviderID = mod.ProviderID
	r.StartDate = timezone.Format(mod.StartDate, constant.BusinessDateFormat)
	r.EndDate = timezone.Format(mod.EndDate, constant.BusinessDateFormat)
	r.Reason = mod.Reason
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)

	for _, item := range worklist {
		r.Worklist = append(r.Worklist, WorklistItemResponse{
			BookingID:        item.BookingID,
			CustomerID:       item.CustomerID,
			ServiceID:        item.ServiceID,
			Pincode:          item.Pincode,
			Status:           item.Status,
			PreferredDate:    timezone.Format(item.PreferredDate, constant.BusinessDateFormat),
			PreferredStartAt: timezone.Format(item.PreferredStartAt, constant.DateFormat),
		})
	}
}

type GetLeavesResponse struct {
	Leaves    []LeaveResponse `json:"leaves"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetLeavesResponse) FromModels(models []model.Leave, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Leaves = make([]LeaveResponse, len(models))
	for i, mod := range models {
		r.Leaves[i].FromModel(mod, nil)
	}
}

type IsAvailableResponse struct {
	ServiceID    string `json:"service_id"`
	Pincode      string `json:"pincode"`
	BusinessDate string `json:"business_date"`
	Available    bool   `json:"available"`
}

type ActiveProviderResponse struct {
	ProviderID     string `json:"provider_id"`
	Pincode        string `json:"pincode"`
	CheckedInAt    string `json:"checked_in_at"`
	ActiveBookings int    `json:"active_bookings"`
}

func (r *ActiveProviderResponse) FromModel(mod model.ActiveProvider) {
	r.ProviderID = mod.ProviderID
	r.Pincode = mod.Pincode
	r.CheckedInAt = timezone.Format(mod.CheckedInAt, constant.DateFormat)
	r.ActiveBookings = mod.ActiveBookings
}
