package entity

import "time"

// Papéis válidos para User, em ordem crescente de privilégio.
const (
	PapelUsuario = "usuario"
	PapelGerente = "gerente"
	PapelAdmin   = "admin"
)

// nivelPapel é a tabela ordinal de hierarquia de papéis. Papel desconhecido vale 0,
// abaixo de qualquer mínimo exigível.
var nivelPapel = map[string]int{
	PapelAdmin:   3,
	PapelGerente: 2,
	PapelUsuario: 1,
}

// NivelDoPapel devolve o nível ordinal de um papel (0 se desconhecido).
func NivelDoPapel(papel string) int {
	return nivelPapel[papel]
}

// PapelAtende retorna true se papel tem nível maior ou igual ao mínimo exigido.
func PapelAtende(papel, minimo string) bool {
	return NivelDoPapel(papel) >= NivelDoPapel(minimo)
}

// PapelValido retorna true se o papel é um dos três conhecidos.
func PapelValido(papel string) bool {
	return NivelDoPapel(papel) > 0
}

// User representa um usuário do sistema. Cada usuário é a raiz de uma partição de dados
// totalmente isolada: categorias, produtos, clientes e transações pertencem a exatamente um User.
type User struct {
	ID        string
	Username  string
	Email     string
	SenhaHash string // hash bcrypt, nunca senha em claro após persistir
	Papel     string // admin, gerente, usuario
	CriadoEm  time.Time
}
