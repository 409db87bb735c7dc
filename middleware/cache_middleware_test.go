package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/service/redis"
)

type fakeRedis struct {
	data map[string][]byte
}

func (f *fakeRedis) Get(context ctx.Ctx, key string) ([]byte, error) {
	if val, ok := f.data[key]; ok {
		return val, nil
	}
	return nil, redis.ErrNotFound
}

func (f *fakeRedis) Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error {
	f.data[key] = val
	return nil
}

func (f *fakeRedis) Del(context ctx.Ctx, ks ...string) (int, error) {
	n := 0
	for _, k := range ks {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return n, nil
}

type cacheMiddlewareSuite struct {
	suite.Suite

	redis redis.Service
}

func (s *cacheMiddlewareSuite) SetupTest() {
	s.redis = &fakeRedis{data: map[string][]byte{}}
}

func TestCacheMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(cacheMiddlewareSuite))
}

func (s *cacheMiddlewareSuite) TestCacheMiddleware() {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	res := "Hello, World"
	h := func(c echo.Context) error {
		return c.String(http.StatusOK, res)
	}

	c := e.NewContext(req, rec)
	cont := ctx.WithValue(ctx.Background(), "requestID", c.Response().Header().Get(echo.HeaderXRequestID))
	c.Set("ctx", cont)

	if s.NoError(CacheHttp(s.redis, 30*time.Second)(h)(c)) {
		s.Equal(http.StatusOK, rec.Code)
		s.Equal(res, rec.Body.String())
	}

	// second handler never runs, the cached body is replayed
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	rec2 := httptest.NewRecorder()
	res2 := "Hello, again"
	h2 := func(c echo.Context) error {
		return c.String(http.StatusOK, res2)
	}
	c2 := e.NewContext(req2, rec2)
	c2.Set("ctx", cont)

	if s.NoError(CacheHttp(s.redis, 30*time.Second)(h2)(c2)) {
		s.Equal(http.StatusOK, rec2.Code)
		s.Equal(res, rec2.Body.String())
	}

	key := generateKey(req.URL.String())
	_, err := s.redis.Get(cont, key)
	s.Nil(err)
}
