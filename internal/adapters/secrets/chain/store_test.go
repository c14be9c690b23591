package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	values map[string]string
	err    error
	calls  int
}

func (s *stubStore) Put(_ context.Context, key string, value string) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	if s.values == nil {
		s.values = map[string]string{}
	}
	s.values[key] = value
	return nil
}

func (s *stubStore) Get(_ context.Context, key string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.values[key], nil
}

func (s *stubStore) Delete(_ context.Context, key string) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	delete(s.values, key)
	return nil
}

func TestNewStoreRequiresBothBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStore(nil, &stubStore{})
	require.Error(t, err)

	_, err = NewStore(&stubStore{}, nil)
	require.Error(t, err)
}

func TestStorePrefersPrimary(t *testing.T) {
	t.Parallel()

	primary := &stubStore{values: map[string]string{"know2/dev/password": "from-primary"}}
	fallback := &stubStore{values: map[string]string{"know2/dev/password": "from-fallback"}}

	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	got, err := store.Get(context.Background(), "know2/dev/password")
	require.NoError(t, err)
	assert.Equal(t, "from-primary", got)
	assert.Zero(t, fallback.calls)
}

func TestStoreFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := &stubStore{err: errors.New("pass command unavailable")}
	fallback := &stubStore{values: map[string]string{"know2/dev/password": "from-fallback"}}

	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	got, err := store.Get(context.Background(), "know2/dev/password")
	require.NoError(t, err)
	assert.Equal(t, "from-fallback", got)

	require.NoError(t, store.Put(context.Background(), "know2/dev/password", "updated"))
	assert.Equal(t, "updated", fallback.values["know2/dev/password"])
}

func TestStoreReportsBothFailures(t *testing.T) {
	t.Parallel()

	primaryErr := errors.New("primary broke")
	fallbackErr := errors.New("fallback broke")

	store, err := NewStore(&stubStore{err: primaryErr}, &stubStore{err: fallbackErr})
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "know2/dev/password")
	require.Error(t, err)
	assert.True(t, errors.Is(err, primaryErr))
	assert.True(t, errors.Is(err, fallbackErr))
}

func TestStoreDoesNotFallBackOnCancellation(t *testing.T) {
	t.Parallel()

	fallback := &stubStore{values: map[string]string{"know2/dev/password": "from-fallback"}}
	store, err := NewStore(&stubStore{err: context.Canceled}, fallback)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "know2/dev/password")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, fallback.calls)
}
