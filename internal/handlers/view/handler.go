// Package view serves rendered alignment grids over plain HTTP for sheets
// and overlays that embed them as images.
package view

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/KirkDiggler/rpg-alignment/internal/errors"
	gridsvc "github.com/KirkDiggler/rpg-alignment/internal/orchestrators/grid"
	"github.com/KirkDiggler/rpg-alignment/internal/render/grid"
)

// HandlerConfig holds dependencies for the view handler
type HandlerConfig struct {
	GridService gridsvc.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.GridService == nil {
		return errors.InvalidArgument("grid service is required")
	}
	return nil
}

// Handler serves grid images and hover lookups
type Handler struct {
	gridService gridsvc.Service
	mux         *http.ServeMux
}

// NewHandler creates a new view handler with its routes registered
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	h := &Handler{
		gridService: cfg.GridService,
		mux:         http.NewServeMux(),
	}
	h.mux.HandleFunc("GET /characters/{id}", h.getTab)
	h.mux.HandleFunc("GET /characters/{id}/tab.png", h.getTabImage)
	h.mux.HandleFunc("GET /grid.png", h.getGridImage)
	h.mux.HandleFunc("GET /grid/hover", h.getHover)

	return h, nil
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

type tabResponse struct {
	Tab       gridsvc.TabView `json:"tab"`
	ActiveTab string          `json:"active_tab"`
}

type hoverResponse struct {
	Found bool `json:"found"`
	*hoverHit
}

// hoverHit is flattened into hoverResponse and left out on a miss
type hoverHit struct {
	ID      string  `json:"id"`
	Text    string  `json:"text"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Color   string  `json:"color"`
	MarkerX float64 `json:"marker_x"`
	MarkerY float64 `json:"marker_y"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *Handler) getTab(w http.ResponseWriter, r *http.Request) {
	out, err := h.gridService.RenderTab(r.Context(), &gridsvc.RenderTabInput{
		CharacterID: r.PathValue("id"),
		ActiveTab:   r.URL.Query().Get("tab"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, tabResponse{Tab: out.Tab, ActiveTab: out.ActiveTab})
}

func (h *Handler) getTabImage(w http.ResponseWriter, r *http.Request) {
	out, err := h.gridService.RenderTab(r.Context(), &gridsvc.RenderTabInput{
		CharacterID: r.PathValue("id"),
		ActiveTab:   r.URL.Query().Get("tab"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("X-Active-Tab", out.ActiveTab)
	h.writePNG(w, r, out.PNG)
}

func (h *Handler) getGridImage(w http.ResponseWriter, r *http.Request) {
	out, err := h.gridService.RenderParty(r.Context(), &gridsvc.RenderPartyInput{
		HighlightID: r.URL.Query().Get("highlight"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("X-Grid-Origin", strconv.Itoa(out.Origin.X)+","+strconv.Itoa(out.Origin.Y))
	h.writePNG(w, r, out.PNG)
}

func (h *Handler) getHover(w http.ResponseWriter, r *http.Request) {
	vb := errors.NewValidationBuilder()
	x, errX := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
	if errX != nil {
		vb.Field("x", "must be a number")
	}
	y, errY := strconv.ParseFloat(r.URL.Query().Get("y"), 64)
	if errY != nil {
		vb.Field("y", "must be a number")
	}
	if err := vb.Build(); err != nil {
		h.writeError(w, r, err)
		return
	}

	out, err := h.gridService.Hover(r.Context(), &gridsvc.HoverInput{X: x, Y: y})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := hoverResponse{Found: out.Found}
	if out.Found {
		resp.hoverHit = &hoverHit{
			ID:      out.Marker.ID,
			Text:    out.Tooltip.Text,
			X:       out.Tooltip.X,
			Y:       out.Tooltip.Y,
			Color:   grid.Hex(out.Marker.Color),
			MarkerX: out.Marker.X,
			MarkerY: out.Marker.Y,
		}
	}
	h.writeJSON(w, r, resp)
}

func (h *Handler) writePNG(w http.ResponseWriter, r *http.Request, png []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	if _, err := w.Write(png); err != nil {
		slog.WarnContext(r.Context(), "Failed to write image", "path", r.URL.Path, "error", err)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.WarnContext(r.Context(), "Failed to write response", "path", r.URL.Path, "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == errors.CodeInternal {
		slog.ErrorContext(r.Context(), "View request failed", "path", r.URL.Path, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code.HTTPStatus())
	if encErr := json.NewEncoder(w).Encode(errorResponse{
		Code:    code.String(),
		Message: errors.GetMessage(err),
	}); encErr != nil {
		slog.WarnContext(r.Context(), "Failed to write error", "path", r.URL.Path, "error", encErr)
	}
}
