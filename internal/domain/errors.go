package domain

import "errors"

// Erros de domínio (sem dependências externas). Os handlers HTTP traduzem cada um
// para o status correspondente: 401, 403, 404, 400.
var (
	ErrNaoEncontrado       = errors.New("recurso não encontrado")
	ErrNaoAutenticado      = errors.New("não autenticado")
	ErrAcessoNegado        = errors.New("você não tem permissão para realizar esta ação")
	ErrUsuarioJaExiste     = errors.New("username já registrado")
	ErrEntradaInvalida     = errors.New("entrada inválida")
	ErrEstoqueInsuficiente = errors.New("estoque insuficiente")
)
