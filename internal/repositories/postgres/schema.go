package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema mirrors the in-memory collections. The seq columns keep the
// insertion order that listings must preserve.
const schema = `
CREATE TABLE IF NOT EXISTS responsaveis (
	seq        BIGSERIAL,
	id         INTEGER PRIMARY KEY,
	nome       TEXT NOT NULL,
	cpf        TEXT NOT NULL UNIQUE,
	telefone   TEXT NOT NULL,
	email      TEXT NOT NULL,
	endereco   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS animais (
	seq             BIGSERIAL,
	id              INTEGER PRIMARY KEY,
	nome            TEXT NOT NULL,
	especie         TEXT NOT NULL,
	raca            TEXT NOT NULL,
	sexo            TEXT NOT NULL,
	data_nascimento TIMESTAMPTZ NOT NULL,
	responsavel_id  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS veterinarios (
	seq           BIGSERIAL,
	id            INTEGER PRIMARY KEY,
	nome          TEXT NOT NULL,
	crmv          TEXT NOT NULL UNIQUE,
	especialidade TEXT NOT NULL,
	contato       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS consultas (
	seq              BIGSERIAL,
	id               INTEGER PRIMARY KEY,
	animal_id        INTEGER NOT NULL,
	veterinario_id   INTEGER NOT NULL,
	data             TIMESTAMPTZ NOT NULL,
	horario          TEXT NOT NULL,
	tipo_atendimento TEXT NOT NULL,
	UNIQUE (veterinario_id, data, horario)
);

CREATE TABLE IF NOT EXISTS atendimentos (
	seq         BIGSERIAL,
	id          INTEGER PRIMARY KEY,
	consulta_id INTEGER NOT NULL,
	observacoes TEXT,
	diagnostico TEXT
);

CREATE TABLE IF NOT EXISTS medicacoes (
	seq            BIGSERIAL,
	id             INTEGER PRIMARY KEY,
	atendimento_id INTEGER NOT NULL,
	nome           TEXT NOT NULL,
	dosagem        TEXT NOT NULL,
	frequencia     TEXT NOT NULL,
	forma          TEXT NOT NULL,
	observacoes    TEXT
);

CREATE TABLE IF NOT EXISTS credenciais (
	username      TEXT PRIMARY KEY,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL
);
`

// EnsureSchema creates the clinic tables when they do not exist yet.
func EnsureSchema(pool *pgxpool.Pool) error {
	if _, err := pool.Exec(context.Background(), schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
