package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clearview/jobtracker/internal/api/metrics"
	"github.com/clearview/jobtracker/internal/core/ports"
)

// JobHandler handles HTTP requests for the caller's jobs.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List handles GET /api/jobs.
//
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   jobResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.service.ListJobs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponses(jobs))
}

// Get handles GET /api/jobs/:id.
//
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  jobResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	job, err := h.service.GetJob(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Create handles POST /api/jobs.
//
// @Summary      Create a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  jobResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req createJobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	job, err := h.service.CreateJob(c.Request().Context(), toCreateJobInput(req))
	if err != nil {
		return err
	}
	metrics.JobsCreatedTotal.WithLabelValues(job.Service).Inc()
	return c.JSON(http.StatusCreated, toJobResponse(job))
}

// Update handles PUT /api/jobs/:id.
//
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int               true  "Job ID"
// @Param        body  body      updateJobRequest  true  "Job details"
// @Success      200   {object}  jobResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateJobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	job, err := h.service.UpdateJob(c.Request().Context(), id, toUpdateJobInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Delete handles DELETE /api/jobs/:id.
//
// @Summary      Delete a job
// @Tags         jobs
// @Security     BearerAuth
// @Param        id   path  int  true  "Job ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteJob(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkPaid handles PATCH /api/jobs/:id/mark-paid.
//
// @Summary      Mark a job as paid
// @Description  Sets paid and assigns invoice number INV-<id>. Repeating the call is harmless.
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  jobResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/jobs/{id}/mark-paid [patch]
func (h *JobHandler) MarkPaid(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	job, err := h.service.MarkJobPaid(c.Request().Context(), id)
	if err != nil {
		return err
	}
	metrics.JobsPaidTotal.Inc()
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Revenue handles GET /api/jobs/revenue.
//
// @Summary      Monthly revenue
// @Description  Sums job prices per month of job date, split into paid and unpaid.
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   revenueResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/jobs/revenue [get]
func (h *JobHandler) Revenue(c echo.Context) error {
	months, err := h.service.Revenue(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRevenueResponses(months))
}
