package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/estate-api/internal/errs"
	"github.com/deppfellow/estate-api/internal/server"
	"github.com/deppfellow/estate-api/internal/service"
	"github.com/deppfellow/estate-api/internal/validation"
)

// IntakeHandler accepts validated submissions and queues them for the back
// office.
type IntakeHandler struct {
	Handler
	submissions *service.SubmissionService
}

func NewIntakeHandler(s *server.Server, submissions *service.SubmissionService) *IntakeHandler {
	return &IntakeHandler{
		Handler:     NewHandler(s),
		submissions: submissions,
	}
}

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

func (r *RegisterRequest) Rules() validation.RuleSet { return validation.Registration }

func (r *RegisterRequest) Populate(record validation.Record) {
	r.Name, _ = record.Get("name")
	r.Email, _ = record.Get("email")
	r.Password, _ = record.Get("password")
}

type InquiryRequest struct {
	Name    string
	Email   string
	Message string
}

func (r *InquiryRequest) Rules() validation.RuleSet { return validation.Inquiry }

func (r *InquiryRequest) Populate(record validation.Record) {
	r.Name, _ = record.Get("name")
	r.Email, _ = record.Get("email")
	r.Message, _ = record.Get("message")
}

// PropertyRequest is used by both create and update. Price is kept as the
// client sent it.
type PropertyRequest struct {
	Title       string
	Description string
	Type        string
	Status      string
	Location    string
	Price       string
}

func (r *PropertyRequest) Rules() validation.RuleSet { return validation.Property }

func (r *PropertyRequest) Populate(record validation.Record) {
	r.Title, _ = record.Get("title")
	r.Description, _ = record.Get("description")
	r.Type, _ = record.Get("type")
	r.Status, _ = record.Get("status")
	r.Location, _ = record.Get("location")
	r.Price, _ = record.Get("price")
}

func (r *PropertyRequest) data() map[string]string {
	return map[string]string{
		"title":       r.Title,
		"description": r.Description,
		"type":        r.Type,
		"status":      r.Status,
		"location":    r.Location,
		"price":       r.Price,
	}
}

type BlogPostRequest struct {
	Title   string
	Content string
	Status  string
}

func (r *BlogPostRequest) Rules() validation.RuleSet { return validation.BlogPost }

func (r *BlogPostRequest) Populate(record validation.Record) {
	r.Title, _ = record.Get("title")
	r.Content, _ = record.Get("content")
	r.Status, _ = record.Get("status")
}

func (r *BlogPostRequest) data() map[string]string {
	return map[string]string{
		"title":   r.Title,
		"content": r.Content,
		"status":  r.Status,
	}
}

func (h *IntakeHandler) Register(c echo.Context, req *RegisterRequest) (*service.Receipt, error) {
	return h.submissions.SubmitRegistration(c.Request().Context(), req.Name, req.Email, req.Password)
}

func (h *IntakeHandler) CreateInquiry(c echo.Context, req *InquiryRequest) (*service.Receipt, error) {
	return h.submissions.Submit(c.Request().Context(), service.KindInquiry, "", map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"message": req.Message,
	})
}

func (h *IntakeHandler) CreateProperty(c echo.Context, req *PropertyRequest) (*service.Receipt, error) {
	return h.submissions.Submit(c.Request().Context(), service.KindProperty, "", req.data())
}

func (h *IntakeHandler) UpdateProperty(c echo.Context, req *PropertyRequest) (*service.Receipt, error) {
	id, err := resourceID(c, "Property not found")
	if err != nil {
		return nil, err
	}
	return h.submissions.Submit(c.Request().Context(), service.KindProperty, id, req.data())
}

func (h *IntakeHandler) CreateBlogPost(c echo.Context, req *BlogPostRequest) (*service.Receipt, error) {
	return h.submissions.Submit(c.Request().Context(), service.KindBlogPost, "", req.data())
}

func (h *IntakeHandler) UpdateBlogPost(c echo.Context, req *BlogPostRequest) (*service.Receipt, error) {
	id, err := resourceID(c, "Blog post not found")
	if err != nil {
		return nil, err
	}
	return h.submissions.Submit(c.Request().Context(), service.KindBlogPost, id, req.data())
}

// resourceID returns the :id path parameter. Anything that is not a UUID
// cannot name an existing resource.
func resourceID(c echo.Context, notFound string) (string, error) {
	id := c.Param("id")
	if !validation.IsValidUUID(id) {
		return "", errs.NewNotFoundError(notFound, true, nil)
	}
	return id, nil
}
