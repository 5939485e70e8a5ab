package handlers

import (
	"errors"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/GlobisHR/site_service/internal/api/rest/middleware"
	"github.com/GlobisHR/site_service/internal/dto"
	"github.com/GlobisHR/site_service/internal/helper"
	"github.com/GlobisHR/site_service/internal/services"
	"github.com/GlobisHR/site_service/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const maxImageSize = 5 * 1024 * 1024 // 5MB

var allowedImageExt = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
}

type AdminHandler struct {
	svc  services.AdminService
	auth helper.Auth
}

func NewAdminHandler(svc services.AdminService, auth helper.Auth) *AdminHandler {
	return &AdminHandler{svc: svc, auth: auth}
}

func (h *AdminHandler) SetupRoutes(app *fiber.App) {
	admin := app.Group("/api/admin")

	admin.Post("/login", h.Login)

	admin.Use(middleware.AdminAuth(h.auth))

	admin.Put("/about", h.UpsertAbout)

	admin.Post("/services", h.CreateService)
	admin.Put("/services/:id", h.UpdateService)
	admin.Delete("/services/:id", h.DeleteService)

	admin.Get("/jobs", h.ListJobs)
	admin.Post("/jobs", h.CreateJob)
	admin.Put("/jobs/:id", h.UpdateJob)
	admin.Delete("/jobs/:id", h.DeleteJob)
	admin.Get("/jobs/:id/applications", h.ListJobApplications)

	admin.Post("/offices", h.CreateOffice)
	admin.Put("/offices/:id", h.UpdateOffice)
	admin.Delete("/offices/:id", h.DeleteOffice)

	admin.Post("/blog", h.CreateBlogPost)
	admin.Put("/blog/:id", h.UpdateBlogPost)
	admin.Delete("/blog/:id", h.DeleteBlogPost)
	admin.Post("/blog/:id/images", h.AddBlogImage)
	admin.Post("/blog/:id/videos", h.AddBlogVideo)

	admin.Get("/applications", h.ListApplications)
	admin.Get("/inquiries", h.ListInquiries)
}

func (h *AdminHandler) Login(ctx *fiber.Ctx) error {
	var input dto.AdminLogin
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	token, err := h.svc.Login(input)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "invalid email or password")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.LoginResponse{Token: token})
}

func (h *AdminHandler) UpsertAbout(ctx *fiber.Ctx) error {
	var input dto.AboutUpsertRequest
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	about, err := h.svc.UpsertAbout(input)
	if err != nil {
		return h.serviceError(ctx, "upsert about", err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, about)
}

func (h *AdminHandler) CreateService(ctx *fiber.Ctx) error {
	var input dto.ServiceRequest
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	svc, err := h.svc.CreateService(input)
	if err != nil {
		return h.serviceError(ctx, "create service", err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, svc)
}

func (h *AdminHandler) UpdateService(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "service not found")
	}
	var input dto.ServiceRequest
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	svc, err := h.svc.UpdateService(id, input)
	if err != nil {
		return h.serviceError(ctx, "update service", err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, svc)
}

func (h *AdminHandler) DeleteService(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "service not found")
	}
	if err := h.svc.DeleteService(id); err != nil {
		return h.serviceError(ctx, "delete service", err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "service deleted")
}

func (h *AdminHandler) ListJobs(ctx *fiber.Ctx) error {
	jobs, err := h.svc.ListJobs()
	if err != nil {
		return h.serviceError(ctx, "list jobs", err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, jobs)
}

func (h *AdminHandler) CreateJob(ctx *fiber.Ctx) error {
	var input dto.JobRequest
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	job, err := h.svc.CreateJob(input)
	if err != nil {
		return h.serviceError(ctx, "create job", err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, job)
}

func (h *AdminHandler) UpdateJob(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "job not found")
	}
	var input dto.JobRequest
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	job, err := h.svc.UpdateJob(id, input)
	if err != nil {
		return h.serviceError(ctx, "update job", err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, job)
}

func (h *AdminHandler) DeleteJob(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "job not found")
	}
	if err := h.svc.DeleteJob(id); err != nil {
		return h.serviceError(ctx, "delete job", err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "job deleted")
}

func (h *AdminHandler) ListJobApplications(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "job not found")
	}
	apps, err := h.svc.ListJobApplications(id)
	if err != nil {
		return h.serviceError(ctx, "list job applications", err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, apps)
}

func (h *AdminHandler) CreateOffice(ctx *fiber.Ctx) error {
	var input dto.OfficeRequest
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	office, err := h.svc.CreateOffice(input)
	if err != nil {
		return h.serviceError(ctx, "create office", err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, office)
}

func (h *AdminHandler) UpdateOffice(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "office not found")
	}
	var input dto.OfficeRequest
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	office, err := h.svc.UpdateOffice(id, input)
	if err != nil {
		return h.serviceError(ctx, "update office", err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, office)
}

func (h *AdminHandler) DeleteOffice(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "office not found")
	}
	if err := h.svc.DeleteOffice(id); err != nil {
		return h.serviceError(ctx, "delete office", err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "office deleted")
}

// CreateBlogPost accepts multipart form data: title, content, author and an
// optional main_image file.
func (h *AdminHandler) CreateBlogPost(ctx *fiber.Ctx) error {
	input := dto.BlogPostRequest{
		Title:   ctx.FormValue("title"),
		Content: ctx.FormValue("content"),
		Author:  ctx.FormValue("author"),
	}

	imageName, image, err := h.readImageFile(ctx, "main_image")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	post, err := h.svc.CreateBlogPost(ctx.Context(), input, imageName, image)
	if err != nil {
		return h.serviceError(ctx, "create blog post", err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, post)
}

func (h *AdminHandler) UpdateBlogPost(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "post not found")
	}
	var input dto.BlogPostRequest
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	post, err := h.svc.UpdateBlogPost(id, input)
	if err != nil {
		return h.serviceError(ctx, "update blog post", err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, post)
}

func (h *AdminHandler) DeleteBlogPost(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "post not found")
	}
	if err := h.svc.DeleteBlogPost(id); err != nil {
		return h.serviceError(ctx, "delete blog post", err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "post deleted")
}

func (h *AdminHandler) AddBlogImage(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "post not found")
	}

	imageName, image, err := h.readImageFile(ctx, "image")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	if len(image) == 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "image file is required")
	}

	img, err := h.svc.AddBlogImage(ctx.Context(), id, imageName, image, ctx.FormValue("caption"))
	if err != nil {
		return h.serviceError(ctx, "add blog image", err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, img)
}

func (h *AdminHandler) AddBlogVideo(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "post not found")
	}
	var input dto.BlogVideoRequest
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	vid, err := h.svc.AddBlogVideo(id, input)
	if err != nil {
		return h.serviceError(ctx, "add blog video", err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, vid)
}

func (h *AdminHandler) ListApplications(ctx *fiber.Ctx) error {
	limit, offset := queryLimitOffset(ctx)
	apps, err := h.svc.ListApplications(limit, offset)
	if err != nil {
		return h.serviceError(ctx, "list applications", err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, apps)
}

func (h *AdminHandler) ListInquiries(ctx *fiber.Ctx) error {
	limit, offset := queryLimitOffset(ctx)
	inquiries, err := h.svc.ListInquiries(limit, offset)
	if err != nil {
		return h.serviceError(ctx, "list inquiries", err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, inquiries)
}

// readImageFile pulls an optional image upload out of the multipart form.
// A missing file is not an error; a wrong extension or oversized file is.
func (h *AdminHandler) readImageFile(ctx *fiber.Ctx, field string) (string, []byte, error) {
	file, err := ctx.FormFile(field)
	if err != nil || file == nil {
		return "", nil, nil
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		return "", nil, errors.New("only jpg/jpeg/png/webp allowed")
	}
	if file.Size > maxImageSize {
		return "", nil, errors.New("file too large (max 5MB)")
	}

	f, err := file.Open()
	if err != nil {
		return "", nil, errors.New("cannot open uploaded file")
	}
	defer f.Close()

	b, err := utils.ReadAllLimit(f, maxImageSize)
	if err != nil {
		return "", nil, errors.New("cannot read uploaded file")
	}
	return file.Filename, b, nil
}

func (h *AdminHandler) serviceError(ctx *fiber.Ctx, op string, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "not found")
	}
	log.Printf("%s error: %v", op, err)
	return utils.ResponseError(ctx, fiber.StatusInternalServerError, "internal server error")
}

func paramID(ctx *fiber.Ctx) (uint, bool) {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}

func queryLimitOffset(ctx *fiber.Ctx) (int, int) {
	limit, err := strconv.Atoi(ctx.Query("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}
	offset, err := strconv.Atoi(ctx.Query("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
