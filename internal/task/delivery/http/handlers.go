package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-tracker/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task. Status defaults to to_do and priority to medium.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201  {object} detailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newDetailResp(t))
}

// List godoc
// @Summary     List tasks
// @Description Returns a paginated list of tasks, newest first.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       status           query string false "Filter by status (to_do, in_progress, done)"
// @Param       priority         query string false "Filter by priority (critical, high, medium, low)"
// @Param       is_voice_created query bool   false "Filter voice-created tasks"
// @Param       limit            query int    false "Page size (default: 20)"
// @Param       offset           query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	t, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update. A null due_date clears the due date.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Search godoc
// @Summary     Search tasks
// @Description Case-insensitive substring search over title, description and transcript.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       q    query string    false "Search text"
// @Param       body body  searchReq false "Search text (POST)"
// @Success     200 {object} tasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/tasks/search/query [GET]
// @Router      /api/tasks/search/query [POST]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tasks, err := h.uc.Search(ctx, req.Query)
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTasksResp(tasks))
}

// Upcoming godoc
// @Summary     Upcoming tasks
// @Description Open tasks due within the next days days (default 7), soonest first.
// @Tags        Tasks
// @Produce     json
// @Param       days query int false "Window in days (1-365, default 7)"
// @Success     200 {object} tasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/tasks/get/upcoming [GET]
func (h *handler) Upcoming(c *gin.Context) {
	ctx := c.Request.Context()

	days, err := h.processDaysReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tasks, err := h.uc.Upcoming(ctx, days)
	if err != nil {
		h.l.Errorf(ctx, "uc.Upcoming: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTasksResp(tasks))
}

// Overdue godoc
// @Summary     Overdue tasks
// @Description Open tasks whose due date has passed, oldest first.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} tasksResp
// @Router      /api/tasks/get/overdue [GET]
func (h *handler) Overdue(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.Overdue(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Overdue: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTasksResp(tasks))
}

// Stats godoc
// @Summary     Task statistics
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} statsResp
// @Router      /api/tasks/get/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(stats))
}

// ByPriority godoc
// @Summary     Tasks by priority
// @Tags        Tasks
// @Produce     json
// @Param       priority path string true "critical, high, medium or low"
// @Success     200 {object} tasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/tasks/get/priority/{priority} [GET]
func (h *handler) ByPriority(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.ByPriority(ctx, c.Param("priority"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ByPriority: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTasksResp(tasks))
}
