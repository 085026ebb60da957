package mock

import (
	"context"

	"github.com/mjarosz/newsprobe"
)

var _ newsprobe.Cache = (*Cache)(nil)

// Cache is a mock implementation of newsprobe.Cache.
type Cache struct {
	GetFn    func(key string) (any, bool)
	SetFn    func(key string, value any)
	DeleteFn func(key string)
}

func (c *Cache) Get(key string) (any, bool) {
	if c.GetFn == nil {
		return nil, false
	}
	return c.GetFn(key)
}

func (c *Cache) Set(key string, value any) {
	if c.SetFn != nil {
		c.SetFn(key, value)
	}
}

func (c *Cache) Delete(key string) {
	if c.DeleteFn != nil {
		c.DeleteFn(key)
	}
}

var _ newsprobe.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of newsprobe.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}
