package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Hospital-api/internal/application/reports"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF  = "application/pdf"
)

// ReportHandler descargas XLSX y PDF.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func sendFile(c *fiber.Ctx, mime, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}

// TransactionsXLSX godoc
// @Summary      Exportar transacciones (XLSX)
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/transactions.xlsx [get]
func (h *ReportHandler) TransactionsXLSX(c *fiber.Ctx) error {
	p, err := h.uc.ResolvePeriod(c.Query("from"), c.Query("to"))
	if err != nil {
		return writeError(c, err)
	}
	body, name, err := h.uc.TransactionsXLSX(c.Context(), p)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, mimeXLSX, name, body)
}

// InventoryXLSX godoc
// @Summary      Exportar inventario (XLSX)
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Router       /api/reports/inventory.xlsx [get]
func (h *ReportHandler) InventoryXLSX(c *fiber.Ctx) error {
	body, name, err := h.uc.InventoryXLSX(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, mimeXLSX, name, body)
}

// FinancialPDF godoc
// @Summary      Resumen financiero (PDF)
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/financial.pdf [get]
func (h *ReportHandler) FinancialPDF(c *fiber.Ctx) error {
	p, err := h.uc.ResolvePeriod(c.Query("from"), c.Query("to"))
	if err != nil {
		return writeError(c, err)
	}
	body, name, err := h.uc.FinancialPDF(c.Context(), p)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, mimePDF, name, body)
}
