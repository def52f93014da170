package services

import (
	"context"
	"time"
)

// storeTimeout ограничивает каждое обращение к хранилищу,
// чтобы отказ БД не подвешивал запрос.
const storeTimeout = 5 * time.Second

func withStoreTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, storeTimeout)
}
