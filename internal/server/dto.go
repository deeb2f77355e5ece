package server

import (
	"time"

	"worklog-billing/internal/domain"
	"worklog-billing/internal/services"
	"worklog-billing/internal/validation"
)

// createPaymentRequest is the payload for creating a payment batch
type createPaymentRequest struct {
	DateRangeStart        string  `json:"date_range_start"`
	DateRangeEnd          string  `json:"date_range_end"`
	ExcludedWorkLogIDs    []int64 `json:"excluded_wl_ids"`
	ExcludedFreelancerIDs []int64 `json:"excluded_freelancer_ids"`
}

type freelancerResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	HourlyRate float64   `json:"hourly_rate"`
	CreatedAt  time.Time `json:"created_at"`
}

type freelancerListResponse struct {
	Data  []freelancerResponse `json:"data"`
	Count int                  `json:"count"`
}

type workLogListResponse struct {
	Data  []services.WorkLogView `json:"data"`
	Count int                    `json:"count"`
}

type paymentResponse struct {
	ID             int64                         `json:"id"`
	Status         string                        `json:"status"`
	TotalAmount    float64                       `json:"total_amount"`
	DateRangeStart string                        `json:"date_range_start"`
	DateRangeEnd   string                        `json:"date_range_end"`
	CreatedAt      time.Time                     `json:"created_at"`
	WorkLogs       []services.PaymentWorkLogItem `json:"worklogs"`
}

type paymentListItem struct {
	ID             int64     `json:"id"`
	Status         string    `json:"status"`
	TotalAmount    float64   `json:"total_amount"`
	DateRangeStart string    `json:"date_range_start"`
	DateRangeEnd   string    `json:"date_range_end"`
	CreatedAt      time.Time `json:"created_at"`
	WorkLogCount   int       `json:"wl_count"`
}

type paymentListResponse struct {
	Data  []paymentListItem `json:"data"`
	Count int               `json:"count"`
}

type excludeResponse struct {
	Message  string  `json:"message"`
	NewTotal float64 `json:"new_total"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func toFreelancerListResponse(freelancers []domain.Freelancer) freelancerListResponse {
	data := make([]freelancerResponse, 0, len(freelancers))
	for _, f := range freelancers {
		data = append(data, freelancerResponse{
			ID:         f.ID,
			Name:       f.Name,
			Email:      f.Email,
			HourlyRate: f.HourlyRate,
			CreatedAt:  f.CreatedAt,
		})
	}
	return freelancerListResponse{Data: data, Count: len(data)}
}

func toWorkLogListResponse(views []services.WorkLogView) workLogListResponse {
	if views == nil {
		views = []services.WorkLogView{}
	}
	return workLogListResponse{Data: views, Count: len(views)}
}

func toPaymentResponse(view *services.PaymentView) paymentResponse {
	workLogs := view.WorkLogs
	if workLogs == nil {
		workLogs = []services.PaymentWorkLogItem{}
	}
	return paymentResponse{
		ID:             view.ID,
		Status:         view.Status,
		TotalAmount:    view.TotalAmount,
		DateRangeStart: formatDate(view.DateRangeStart),
		DateRangeEnd:   formatDate(view.DateRangeEnd),
		CreatedAt:      view.CreatedAt,
		WorkLogs:       workLogs,
	}
}

func toPaymentListResponse(items []services.PaymentListItem) paymentListResponse {
	data := make([]paymentListItem, 0, len(items))
	for _, item := range items {
		data = append(data, paymentListItem{
			ID:             item.ID,
			Status:         item.Status,
			TotalAmount:    item.TotalAmount,
			DateRangeStart: formatDate(item.DateRangeStart),
			DateRangeEnd:   formatDate(item.DateRangeEnd),
			CreatedAt:      item.CreatedAt,
			WorkLogCount:   item.WorkLogCount,
		})
	}
	return paymentListResponse{Data: data, Count: len(data)}
}

func formatDate(t time.Time) string {
	return t.Format(validation.DateFormat)
}
