package slotindex

import (
	"context"
	"strconv"

	"github.com/go-redis/redis/v8"

	domain "github.com/barberflow/barberflow-api/internal/domain/appointment"
)

// RedisIndex implementa o SlotIndex sobre Redis. SETNX dá o
// check-and-reserve atômico por chave; de N tentativas concorrentes para o
// mesmo slot, uma grava e as demais recebem conflito.
//
// O índice pode estar frio (Redis recém-subido): nesse caso Reserve passa e o
// índice único parcial do Postgres barra o insert duplicado, que o use case
// converte no mesmo SlotConflictError e compensa com Release.
type RedisIndex struct {
	rdb *redis.Client
}

func NewRedisIndex(rdb *redis.Client) *RedisIndex {
	return &RedisIndex{rdb: rdb}
}

func (i *RedisIndex) Reserve(ctx context.Context, s domain.Slot, appointmentID uint) error {
	ok, err := i.rdb.SetNX(ctx, s.Key(), strconv.FormatUint(uint64(appointmentID), 10), 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		holder, _ := i.rdb.Get(ctx, s.Key()).Uint64()
		return &domain.SlotConflictError{Slot: s, HolderID: uint(holder)}
	}
	return nil
}

func (i *RedisIndex) Bind(ctx context.Context, s domain.Slot, appointmentID uint) error {
	// KeepTTL é irrelevante (chaves sem expiração); SET simples basta porque
	// a chave já pertence a este agendamento.
	return i.rdb.Set(ctx, s.Key(), strconv.FormatUint(uint64(appointmentID), 10), 0).Err()
}

func (i *RedisIndex) Release(ctx context.Context, s domain.Slot) error {
	return i.rdb.Del(ctx, s.Key()).Err()
}

// Compile-time check
var _ domain.SlotIndex = (*RedisIndex)(nil)
