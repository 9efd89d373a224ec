package repository

import "github.com/nexus-estoque/api/internal/domain/entity"

// TransacaoRepository define o porto de persistência para Transacao, sempre filtrado pelo dono.
// Não há Update: transações são imutáveis; a única remoção é o estorno.
type TransacaoRepository interface {
	Create(transacao *entity.Transacao) error
	GetByID(id, userID string) (*entity.Transacao, error)
	ListByUser(userID string) ([]*entity.Transacao, error)
	Delete(id, userID string) error
}
