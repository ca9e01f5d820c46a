package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"fashion-dashboard/internal/config"
	"fashion-dashboard/internal/engine"
	"fashion-dashboard/internal/export"
	"fashion-dashboard/internal/models"
)

// summaryAttrs are the headline attributes the metrics row reports
// distinct counts for, when the source carries them.
var summaryAttrs = []string{"brand", "Product-Type", "Gender-Target"}

// reservedParams are query keys the handlers consume themselves; every
// other query key naming a dataset attribute is a filter criteria entry.
var reservedParams = map[string]bool{
	"attr":    true,
	"limit":   true,
	"row":     true,
	"col":     true,
	"topRows": true,
	"topCols": true,
	"format":  true,
}

type Handler struct {
	cfg    config.Config
	logger *slog.Logger

	mu       sync.RWMutex
	catalogs map[string]*engine.Dataset
}

func NewHandler(cfg config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		cfg:      cfg,
		logger:   logger,
		catalogs: make(map[string]*engine.Dataset),
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.POST("/catalog", h.Upload)
	api.GET("/catalog/:id/summary", h.GetSummary)
	api.GET("/catalog/:id/options", h.GetOptions)
	api.GET("/catalog/:id/columns", h.GetColumns)
	api.GET("/catalog/:id/frequency", h.GetFrequency)
	api.GET("/catalog/:id/crosstab", h.GetCrosstab)
	api.GET("/catalog/:id/export", h.Export)
}

func (h *Handler) catalog(c echo.Context) (*engine.Dataset, error) {
	id := c.Param("id")
	h.mu.RLock()
	d, ok := h.catalogs[id]
	h.mu.RUnlock()
	if !ok {
		return nil, echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("catalog %s not found", id))
	}
	return d, nil
}

// criteria builds filter criteria from the request: every non-reserved
// query key naming an attribute of the raw dataset becomes an accepted
// set. Repeated params form the set; the 'All' value is the accept-all
// sentinel understood by the engine.
func criteria(c echo.Context, raw *engine.Dataset) engine.Criteria {
	crit := engine.Criteria{}
	for key, values := range c.QueryParams() {
		if reservedParams[key] || !raw.HasAttribute(key) {
			continue
		}
		crit[key] = values
	}
	return crit
}

// --- HANDLERS ---

// Upload parses a multipart CSV into a new immutable catalog and returns
// its id. A headerless source is the one fatal case and maps to 400.
func (h *Handler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing 'file' upload")
	}
	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to open upload")
	}
	defer src.Close()

	dataset, err := engine.Load(src)
	if err != nil {
		if errors.Is(err, engine.ErrDataFormat) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	id := uuid.NewString()
	h.mu.Lock()
	h.catalogs[id] = dataset
	h.mu.Unlock()

	h.logger.Info("catalog uploaded",
		slog.String("id", id),
		slog.String("filename", fileHeader.Filename),
		slog.Int("rows", dataset.Len()))

	return c.JSON(http.StatusOK, models.UploadResult{
		ID:         id,
		Rows:       dataset.Len(),
		Attributes: dataset.Attributes(),
	})
}

// GetSummary returns the metrics row over the filtered view.
func (h *Handler) GetSummary(c echo.Context) error {
	raw, err := h.catalog(c)
	if err != nil {
		return err
	}
	filtered := engine.Apply(raw, criteria(c, raw))

	summary := models.Summary{
		TotalProducts: filtered.Len(),
		Distinct:      make(map[string]int),
	}
	for _, attr := range summaryAttrs {
		if raw.HasAttribute(attr) {
			summary.Distinct[attr] = filtered.DistinctCount(attr)
		}
	}
	return c.JSON(http.StatusOK, summary)
}

type optionsRequest struct {
	Attr string `query:"attr" validate:"required"`
}

// GetOptions lists the filter choices for one attribute. Always computed
// from the raw dataset so menus never shrink as other filters apply.
func (h *Handler) GetOptions(c echo.Context) error {
	raw, err := h.catalog(c)
	if err != nil {
		return err
	}
	var req optionsRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if !raw.HasAttribute(req.Attr) {
		return c.JSON(http.StatusOK, models.Options{Attribute: req.Attr})
	}
	return c.JSON(http.StatusOK, models.Options{
		Attribute: req.Attr,
		Available: true,
		Values:    append([]string{engine.SelectAll}, raw.DistinctValues(req.Attr)...),
	})
}

// GetColumns reports per-attribute presence over the raw dataset.
func (h *Handler) GetColumns(c echo.Context) error {
	raw, err := h.catalog(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.ColumnInfo{
		Rows:    raw.Len(),
		Columns: raw.Profile(),
	})
}

type frequencyRequest struct {
	Attr  string `query:"attr" validate:"required"`
	Limit int    `query:"limit" validate:"gte=-1"`
}

// GetFrequency returns the ranked frequency table of one attribute over
// the filtered view. The multi-valued attribute is exploded first; every
// other attribute is tallied directly. limit=0 applies the configured
// default, limit=-1 returns the full table.
func (h *Handler) GetFrequency(c echo.Context) error {
	raw, err := h.catalog(c)
	if err != nil {
		return err
	}
	var req frequencyRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if !raw.HasAttribute(req.Attr) {
		return c.JSON(http.StatusOK, models.Frequency{Attribute: req.Attr})
	}

	filtered := engine.Apply(raw, criteria(c, raw))

	var table engine.FrequencyTable
	if req.Attr == h.cfg.MultiValueAttr {
		table = engine.CountValues(engine.Explode(filtered, req.Attr, h.cfg.TagDelimiter))
	} else {
		table = engine.ValueCounts(filtered, req.Attr)
	}

	// The -1 sentinel (full table) is resolved here; the engine's Rank
	// takes a plain entry count.
	limit := req.Limit
	if limit == 0 {
		limit = h.cfg.DefaultTopN
	}
	if limit < 0 {
		limit = len(table)
	}

	return c.JSON(http.StatusOK, models.Frequency{
		Attribute: req.Attr,
		Available: true,
		Total:     table.Total(),
		Items:     engine.Rank(table, limit),
	})
}

type crosstabRequest struct {
	Row     string `query:"row" validate:"required"`
	Col     string `query:"col" validate:"required"`
	TopRows int    `query:"topRows" validate:"gte=0"`
	TopCols int    `query:"topCols" validate:"gte=0"`
}

// GetCrosstab returns a densified cross-tabulation of two attributes over
// the filtered view, optionally restricted to the top categories of each
// dimension (top 0 = unrestricted). When either side is the multi-valued
// attribute its tags are exploded and paired with the other side's scalar
// value, so a row with two tags contributes to two cells.
func (h *Handler) GetCrosstab(c echo.Context) error {
	raw, err := h.catalog(c)
	if err != nil {
		return err
	}
	var req crosstabRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if !raw.HasAttribute(req.Row) || !raw.HasAttribute(req.Col) {
		return c.JSON(http.StatusOK, models.Heatmap{RowAttribute: req.Row, ColAttribute: req.Col})
	}

	filtered := engine.Apply(raw, criteria(c, raw))

	var ct *engine.Crosstab
	switch {
	case req.Row == h.cfg.MultiValueAttr:
		ct = engine.CrossTabPairs(engine.ExplodePaired(filtered, req.Row, req.Col, h.cfg.TagDelimiter))
	case req.Col == h.cfg.MultiValueAttr:
		pairs := engine.ExplodePaired(filtered, req.Col, req.Row, h.cfg.TagDelimiter)
		for i := range pairs {
			pairs[i].A, pairs[i].B = pairs[i].B, pairs[i].A
		}
		ct = engine.CrossTabPairs(pairs)
	default:
		ct = engine.CrossTab(filtered, req.Row, req.Col)
	}

	var rowKeep, colKeep []string
	if req.TopRows > 0 {
		rowKeep = keepList(h.frequencyTable(filtered, req.Row), req.TopRows)
	}
	if req.TopCols > 0 {
		colKeep = keepList(h.frequencyTable(filtered, req.Col), req.TopCols)
	}

	return c.JSON(http.StatusOK, models.Heatmap{
		RowAttribute: req.Row,
		ColAttribute: req.Col,
		Available:    true,
		Matrix:       engine.Densify(ct, rowKeep, colKeep),
	})
}

func (h *Handler) frequencyTable(d *engine.Dataset, attr string) engine.FrequencyTable {
	if attr == h.cfg.MultiValueAttr {
		return engine.CountValues(engine.Explode(d, attr, h.cfg.TagDelimiter))
	}
	return engine.ValueCounts(d, attr)
}

func keepList(t engine.FrequencyTable, n int) []string {
	top := engine.Rank(t, n)
	keep := make([]string, 0, len(top))
	for _, e := range top {
		keep = append(keep, e.Value)
	}
	return keep
}

type exportRequest struct {
	Format string `query:"format" validate:"omitempty,oneof=csv xlsx"`
}

// Export streams the filtered dataset as a downloadable table.
func (h *Handler) Export(c echo.Context) error {
	raw, err := h.catalog(c)
	if err != nil {
		return err
	}
	var req exportRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.Format == "" {
		req.Format = "csv"
	}

	filtered := engine.Apply(raw, criteria(c, raw))
	resp := c.Response()

	// The status is committed by the serializer's first body write, so a
	// failure before that still surfaces as an error response.
	switch req.Format {
	case "xlsx":
		resp.Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		resp.Header().Set(echo.HeaderContentDisposition, `attachment; filename="filtered_fashion_data.xlsx"`)
		return export.WriteXLSX(resp, filtered)
	default:
		resp.Header().Set(echo.HeaderContentType, "text/csv")
		resp.Header().Set(echo.HeaderContentDisposition, `attachment; filename="filtered_fashion_data.csv"`)
		return export.WriteCSV(resp, filtered)
	}
}
