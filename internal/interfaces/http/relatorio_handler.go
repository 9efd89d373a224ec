package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nexus-estoque/api/internal/application/dto"
	"github.com/nexus-estoque/api/internal/application/relatorio"
	"github.com/nexus-estoque/api/internal/domain"
)

// RelatorioHandler serve os relatórios em PDF.
type RelatorioHandler struct {
	uc *relatorio.UseCase
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *relatorio.UseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// Estoque godoc
// @Summary      Relatório de estoque em PDF
// @Tags         relatorios
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/relatorios/estoque [get]
func (h *RelatorioHandler) Estoque(c *fiber.Ctx) error {
	pdf, err := h.uc.GerarEstoque(c.Context(), GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNaoAutenticado) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuário não autenticado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	nome := fmt.Sprintf("relatorio-estoque-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, nome))
	return c.Send(pdf)
}
