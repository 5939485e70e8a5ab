package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/GlobisHR/site_service/internal/dto"
	"github.com/GlobisHR/site_service/internal/services"
	"github.com/GlobisHR/site_service/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

const maxCVSize = 5 * 1024 * 1024 // 5MB

type SiteHandler struct {
	svc services.SiteService
}

func NewSiteHandler(svc services.SiteService) *SiteHandler {
	return &SiteHandler{svc: svc}
}

func (h *SiteHandler) SetupRoutes(app *fiber.App) {
	// pages
	app.Get("/", h.Home)
	app.Get("/jobs", h.JobsPage)
	app.Get("/jobs/:id", h.JobDetail)
	app.Get("/about", h.AboutPage)
	app.Get("/services", h.ServicesPage)
	app.Get("/contact", h.ContactPage)
	app.Get("/blog", h.BlogPage)
	app.Get("/blog/:id", h.BlogDetail)

	// forms
	app.Post("/apply-job", h.ApplyJob)
	app.Post("/contact-inquiry", h.ContactInquiry)

	// ajax
	ajax := app.Group("/ajax")
	ajax.Get("/jobs", h.JobsAjax)
	ajax.Get("/office/:key", h.OfficeByKey)
}

func (h *SiteHandler) Home(ctx *fiber.Ctx) error {
	page, err := h.svc.Home()
	if err != nil {
		return h.internalError(ctx, "home", err)
	}
	return ctx.JSON(page)
}

func (h *SiteHandler) JobsPage(ctx *fiber.Ctx) error {
	filter := dto.JobFilter{
		Query:    ctx.Query("q"),
		Location: ctx.Query("location"),
	}
	page, err := h.svc.JobsPage(filter, queryPage(ctx))
	if err != nil {
		return h.internalError(ctx, "jobs page", err)
	}
	return ctx.JSON(page)
}

func (h *SiteHandler) JobDetail(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "job not found")
	}

	job, err := h.svc.JobDetail(uint(id))
	if errors.Is(err, services.ErrNotFound) {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "job not found")
	}
	if err != nil {
		return h.internalError(ctx, "job detail", err)
	}
	return ctx.JSON(job)
}

func (h *SiteHandler) AboutPage(ctx *fiber.Ctx) error {
	about, err := h.svc.AboutPage()
	if err != nil {
		return h.internalError(ctx, "about page", err)
	}
	return ctx.JSON(fiber.Map{"about": about})
}

func (h *SiteHandler) ServicesPage(ctx *fiber.Ctx) error {
	siteServices, err := h.svc.ServicesPage()
	if err != nil {
		return h.internalError(ctx, "services page", err)
	}
	return ctx.JSON(fiber.Map{"services": siteServices})
}

func (h *SiteHandler) ContactPage(ctx *fiber.Ctx) error {
	page, err := h.svc.ContactPage()
	if err != nil {
		return h.internalError(ctx, "contact page", err)
	}
	return ctx.JSON(page)
}

func (h *SiteHandler) BlogPage(ctx *fiber.Ctx) error {
	page, err := h.svc.BlogPage(queryPage(ctx))
	if err != nil {
		return h.internalError(ctx, "blog page", err)
	}
	return ctx.JSON(page)
}

func (h *SiteHandler) BlogDetail(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "post not found")
	}

	page, err := h.svc.BlogDetail(uint(id))
	if errors.Is(err, services.ErrNotFound) {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "post not found")
	}
	if err != nil {
		return h.internalError(ctx, "blog detail", err)
	}
	return ctx.JSON(page)
}

// ApplyJob handles the multipart application form. The response is always
// the {success, message} envelope; failures never surface internals.
func (h *SiteHandler) ApplyJob(ctx *fiber.Ctx) error {
	input := dto.ApplyJobInput{
		JobID:       ctx.FormValue("job_id"),
		Name:        ctx.FormValue("name"),
		Email:       ctx.FormValue("email"),
		Phone:       ctx.FormValue("phone"),
		CoverLetter: ctx.FormValue("cover_letter"),
	}

	if file, err := ctx.FormFile("cv"); err == nil && file != nil {
		f, err := file.Open()
		if err != nil {
			log.Printf("open cv upload error: %v", err)
			return ctx.JSON(dto.FormResponse{
				Success: false,
				Message: "An error occurred while submitting your application.",
			})
		}
		defer f.Close()

		b, err := utils.ReadAllLimit(f, maxCVSize)
		if err != nil {
			log.Printf("read cv upload error: %v", err)
			return ctx.JSON(dto.FormResponse{
				Success: false,
				Message: "An error occurred while submitting your application.",
			})
		}
		input.CVFilename = file.Filename
		input.CV = b
	}

	return ctx.JSON(h.svc.ApplyJob(ctx.Context(), input))
}

func (h *SiteHandler) ContactInquiry(ctx *fiber.Ctx) error {
	input := dto.ContactInquiryInput{
		Name:    ctx.FormValue("name"),
		Email:   ctx.FormValue("email"),
		Phone:   ctx.FormValue("phone"),
		Message: ctx.FormValue("message"),
	}
	return ctx.JSON(h.svc.SubmitInquiry(input))
}

func (h *SiteHandler) JobsAjax(ctx *fiber.Ctx) error {
	filter := dto.JobFilter{
		Query:    ctx.Query("q"),
		Location: ctx.Query("location"),
		JobType:  ctx.Query("type"),
	}

	jobs, err := h.svc.JobsAjax(filter)
	if err != nil {
		log.Printf("jobs ajax error: %v", err)
		return ctx.JSON(dto.FormResponse{
			Success: false,
			Message: "Error retrieving jobs",
		})
	}
	return ctx.JSON(dto.JobsAjaxResponse{Success: true, Jobs: jobs})
}

func (h *SiteHandler) OfficeByKey(ctx *fiber.Ctx) error {
	payload, err := h.svc.OfficeByKey(ctx.Params("key"))
	if errors.Is(err, services.ErrNotFound) {
		return ctx.JSON(dto.FormResponse{Success: false, Message: "Office not found"})
	}
	if err != nil {
		log.Printf("office by key error: %v", err)
		return ctx.JSON(dto.FormResponse{
			Success: false,
			Message: "Error retrieving office details",
		})
	}
	return ctx.JSON(dto.OfficeAjaxResponse{Success: true, Office: *payload})
}

func (h *SiteHandler) internalError(ctx *fiber.Ctx, op string, err error) error {
	log.Printf("%s error: %v", op, err)
	return utils.ResponseError(ctx, fiber.StatusInternalServerError, "internal server error")
}

// queryPage reads the page query parameter; anything unparsable falls back
// to the first page and out-of-range values clamp downstream.
func queryPage(ctx *fiber.Ctx) int {
	page, err := strconv.Atoi(ctx.Query("page", "1"))
	if err != nil {
		return 1
	}
	return page
}
