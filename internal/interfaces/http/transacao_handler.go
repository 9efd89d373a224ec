package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nexus-estoque/api/internal/application/dto"
	"github.com/nexus-estoque/api/internal/application/estoque"
	"github.com/nexus-estoque/api/internal/domain"
	"github.com/nexus-estoque/api/internal/domain/entity"
)

// TransacaoHandler trata as requisições HTTP de Transacao (protegido).
// A regra de papel do registro fica no caso de uso (entrada exige gerente+,
// saída é livre para qualquer autenticado); o estorno passa por RequireNivel
// no router e o caso de uso revalida.
type TransacaoHandler struct {
	uc *estoque.UseCase
}

// NewTransacaoHandler constrói o handler.
func NewTransacaoHandler(uc *estoque.UseCase) *TransacaoHandler {
	return &TransacaoHandler{uc: uc}
}

// List godoc
// @Summary      Listar transações do usuário
// @Tags         transacoes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TransacaoResponse
// @Router       /api/transacoes [get]
func (h *TransacaoHandler) List(c *fiber.Ctx) error {
	transacoes, err := h.uc.Listar(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]*dto.TransacaoResponse, 0, len(transacoes))
	for _, t := range transacoes {
		out = append(out, toTransacaoResponse(t))
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar transação de estoque
// @Tags         transacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransacaoRequest  true  "Dados da transação"
// @Success      201   {object}  dto.TransacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transacoes [post]
func (h *TransacaoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	t, err := h.uc.Registrar(c.Context(), GetUserID(c), GetPapel(c), estoque.RegistrarInput{
		Tipo:          in.Tipo,
		ProdutoID:     in.ProdutoID,
		ClienteID:     in.ClienteID,
		Quantidade:    in.Quantidade,
		ValorUnitario: in.ValorUnitario,
		ValorTotal:    in.ValorTotal,
		NumeroPedido:  in.NumeroPedido,
		Observacoes:   in.Observacoes,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo, produto_id e quantidade > 0 são obrigatórios"})
		case errors.Is(err, domain.ErrAcessoNegado):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "entrada de estoque exige papel gerente ou superior"})
		case errors.Is(err, domain.ErrNaoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		case errors.Is(err, domain.ErrEstoqueInsuficiente):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "estoque insuficiente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toTransacaoResponse(t))
}

// Delete godoc
// @Summary      Estornar transação (reverte o efeito no estoque)
// @Tags         transacoes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da transação"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transacoes/{id} [delete]
func (h *TransacaoHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Estornar(c.Context(), GetUserID(c), GetPapel(c), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAcessoNegado):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "estorno exige papel gerente ou superior"})
		case errors.Is(err, domain.ErrNaoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transação não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Transação desfeita com sucesso"})
}

func toTransacaoResponse(t *entity.Transacao) *dto.TransacaoResponse {
	return &dto.TransacaoResponse{
		ID:            t.ID,
		Tipo:          t.Tipo,
		ProdutoID:     t.ProdutoID,
		ClienteID:     t.ClienteID,
		Quantidade:    t.Quantidade,
		ValorUnitario: t.ValorUnitario,
		ValorTotal:    t.ValorTotal,
		NumeroPedido:  t.NumeroPedido,
		Observacoes:   t.Observacoes,
		UserID:        t.UserID,
		CriadoEm:      t.CriadoEm,
	}
}
