package backend

import (
	"context"
	"time"

	"github.com/alamin-islam0/care-xyz-frontend/internal/models"
)

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
	Password string `json:"password"`
	NidNo    string `json:"nidNo,omitempty"`
}

type GoogleLoginRequest struct {
	Credential string `json:"credential"`
}

type CreateBookingRequest struct {
	ServiceID     string                 `json:"serviceId"`
	DurationType  models.DurationType    `json:"durationType"`
	DurationValue int                    `json:"durationValue"`
	Location      models.BookingLocation `json:"location"`
	StartDate     time.Time              `json:"startDate"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// --------- Public catalog ---------

func (c *Client) ListServices(ctx context.Context) ([]models.Service, error) {
	var resp struct {
		Services []models.Service `json:"services"`
	}
	if err := c.get(ctx, "list_services", "/services", "", &resp); err != nil {
		return nil, err
	}
	return resp.Services, nil
}

func (c *Client) GetService(ctx context.Context, id string) (*models.Service, error) {
	var resp struct {
		Service models.Service `json:"service"`
	}
	if err := c.get(ctx, "get_service", "/services/"+id, "", &resp); err != nil {
		return nil, err
	}
	return &resp.Service, nil
}

// --------- Auth ---------

func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "login", "/auth/login", req, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "register", "/auth/register", req, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GoogleLogin(ctx context.Context, credential string) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "google_login", "/auth/google", GoogleLoginRequest{Credential: credential}, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.get(ctx, "me", "/auth/me", token, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// --------- Bookings ---------

func (c *Client) CreateBooking(ctx context.Context, token string, req CreateBookingRequest) (*models.Booking, error) {
	var resp struct {
		Booking models.Booking `json:"booking"`
	}
	if err := c.post(ctx, "create_booking", "/bookings", req, token, &resp); err != nil {
		return nil, err
	}
	return &resp.Booking, nil
}

func (c *Client) MyBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var resp struct {
		Bookings []models.Booking `json:"bookings"`
	}
	if err := c.get(ctx, "my_bookings", "/bookings/my", token, &resp); err != nil {
		return nil, err
	}
	return resp.Bookings, nil
}

func (c *Client) GetBooking(ctx context.Context, token, id string) (*models.Booking, error) {
	var resp struct {
		Booking models.Booking `json:"booking"`
	}
	if err := c.get(ctx, "get_booking", "/bookings/"+id, token, &resp); err != nil {
		return nil, err
	}
	return &resp.Booking, nil
}

func (c *Client) CancelBooking(ctx context.Context, token, id string) (*models.Booking, error) {
	var resp struct {
		Booking models.Booking `json:"booking"`
	}
	if err := c.patch(ctx, "cancel_booking", "/bookings/"+id+"/cancel", struct{}{}, token, &resp); err != nil {
		return nil, err
	}
	return &resp.Booking, nil
}

// --------- Admin ---------

func (c *Client) AllBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var resp struct {
		Bookings []models.Booking `json:"bookings"`
	}
	if err := c.get(ctx, "all_bookings", "/bookings/all", token, &resp); err != nil {
		return nil, err
	}
	return resp.Bookings, nil
}

func (c *Client) UpdateBookingStatus(ctx context.Context, token, id string, status models.Status) (*models.Booking, error) {
	body := struct {
		Status models.Status `json:"status"`
	}{Status: status}

	var resp struct {
		Booking models.Booking `json:"booking"`
	}
	if err := c.patch(ctx, "update_booking_status", "/bookings/"+id+"/status", body, token, &resp); err != nil {
		return nil, err
	}
	return &resp.Booking, nil
}
