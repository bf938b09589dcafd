package controllers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/rentora/rentora/modules/fleet/importing"
	"github.com/rentora/rentora/modules/fleet/services"
	"github.com/rentora/rentora/pkg/httpapi"
	"github.com/rentora/rentora/pkg/server"
)

var allowedImportMimeTypes = map[string]struct{}{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
	"application/zip": {},
}

// ImportController exposes the vehicle import pipeline over HTTP. Preview
// opens a correction session held in memory until the dialog commits or
// abandons it; each session is owned by one import dialog.
type ImportController struct {
	importService *services.ImportService
	maxUploadSize int64
	log           *logrus.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*importing.Session
}

func NewImportController(importService *services.ImportService, maxUploadSize int64, log *logrus.Logger) server.Controller {
	return &ImportController{
		importService: importService,
		maxUploadSize: maxUploadSize,
		log:           log,
		sessions:      make(map[uuid.UUID]*importing.Session),
	}
}

func (c *ImportController) Key() string {
	return "/fleet/vehicles/import"
}

func (c *ImportController) Register(r *mux.Router) {
	router := r.PathPrefix("/fleet/vehicles/import").Subrouter()
	router.HandleFunc("/template", c.template).Methods(http.MethodGet)
	router.HandleFunc("/preview", c.preview).Methods(http.MethodPost)
	router.HandleFunc("/{sessionID}/rows/{row}", c.updateRow).Methods(http.MethodPut)
	router.HandleFunc("/{sessionID}/commit", c.commit).Methods(http.MethodPost)
}

func (c *ImportController) template(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="vehicles_import_template.xlsx"`)
	if err := c.importService.Template(w); err != nil {
		c.log.WithError(err).Error("failed to write import template")
	}
}

func (c *ImportController) preview(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, c.maxUploadSize)
	if err := r.ParseMultipartForm(c.maxUploadSize); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "IMPORT_BAD_UPLOAD", "failed to parse upload", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "IMPORT_MISSING_FILE", "missing file field", nil)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "IMPORT_UNREADABLE_FILE", "failed to read file", nil)
		return
	}
	if _, ok := allowedImportMimeTypes[mtype.String()]; !ok {
		_ = httpapi.WriteError(w, http.StatusUnsupportedMediaType, "IMPORT_BAD_FILE_TYPE", "expected an xlsx workbook", map[string]string{
			"detected": mtype.String(),
		})
		return
	}
	if _, err := file.Seek(0, 0); err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "IMPORT_SEEK_FAILED", "failed to rewind upload", nil)
		return
	}

	sess, err := c.importService.Preview(r.Context(), file)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, "IMPORT_PARSE_FAILED", err.Error(), nil)
		return
	}

	sessionID := uuid.New()
	c.mu.Lock()
	c.sessions[sessionID] = sess
	c.mu.Unlock()

	_ = httpapi.WriteJSON(w, http.StatusOK, newPreviewResponse(sessionID, sess))
}

func (c *ImportController) updateRow(w http.ResponseWriter, r *http.Request) {
	sess, ok := c.session(w, r)
	if !ok {
		return
	}

	row, err := strconv.Atoi(mux.Vars(r)["row"])
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "IMPORT_BAD_ROW", "row must be an integer", nil)
		return
	}

	dto, err := decodeRowDTO(r.Body)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "IMPORT_BAD_BODY", err.Error(), nil)
		return
	}

	if err := c.importService.UpdateRow(r.Context(), sess, row, dto.toRecord()); err != nil {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, "IMPORT_UPDATE_FAILED", err.Error(), nil)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"issues":  sess.Issues()[row],
		"blocked": sess.Blocked(),
	})
}

func (c *ImportController) commit(w http.ResponseWriter, r *http.Request) {
	sess, ok := c.session(w, r)
	if !ok {
		return
	}

	result, err := c.importService.Commit(r.Context(), sess)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusConflict, "IMPORT_COMMIT_BLOCKED", err.Error(), nil)
		return
	}

	// The session is spent once commit finishes.
	sessionID, _ := uuid.Parse(mux.Vars(r)["sessionID"])
	c.mu.Lock()
	delete(c.sessions, sessionID)
	c.mu.Unlock()

	_ = httpapi.WriteJSON(w, http.StatusOK, result)
}

func (c *ImportController) session(w http.ResponseWriter, r *http.Request) (*importing.Session, bool) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionID"])
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "IMPORT_BAD_SESSION", "invalid session id", nil)
		return nil, false
	}

	c.mu.Lock()
	sess, ok := c.sessions[sessionID]
	c.mu.Unlock()
	if !ok {
		_ = httpapi.WriteError(w, http.StatusNotFound, "IMPORT_SESSION_NOT_FOUND", "unknown or expired session", nil)
		return nil, false
	}
	return sess, true
}
