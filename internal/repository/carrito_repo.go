package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// carritoTTL: abandoned carts expire on their own.
const carritoTTL = 24 * time.Hour

// CarritoStore holds each user's in-progress cart. Redis-backed so the cart
// survives server restarts but never touches the relational store.
type CarritoStore interface {
	Get(ctx context.Context, usuarioID uuid.UUID) (*model.Carrito, error)
	Save(ctx context.Context, usuarioID uuid.UUID, c *model.Carrito) error
	Clear(ctx context.Context, usuarioID uuid.UUID) error
}

type carritoStore struct{ rdb *redis.Client }

func NewCarritoStore(rdb *redis.Client) CarritoStore { return &carritoStore{rdb: rdb} }

func carritoKey(usuarioID uuid.UUID) string { return "carrito:" + usuarioID.String() }

func (s *carritoStore) Get(ctx context.Context, usuarioID uuid.UUID) (*model.Carrito, error) {
	data, err := s.rdb.Get(ctx, carritoKey(usuarioID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &model.Carrito{}, nil
	}
	if err != nil {
		return nil, err
	}
	var c model.Carrito
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *carritoStore) Save(ctx context.Context, usuarioID uuid.UUID, c *model.Carrito) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, carritoKey(usuarioID), data, carritoTTL).Err()
}

func (s *carritoStore) Clear(ctx context.Context, usuarioID uuid.UUID) error {
	return s.rdb.Del(ctx, carritoKey(usuarioID)).Err()
}
