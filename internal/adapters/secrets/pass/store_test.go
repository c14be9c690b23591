package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRun struct {
	args   [][]string
	inputs []string
	stdout string
	stderr string
	err    error
}

func (f *fakeRun) run(_ context.Context, input string, args ...string) (string, string, error) {
	f.args = append(f.args, args)
	f.inputs = append(f.inputs, input)
	return f.stdout, f.stderr, f.err
}

func TestStorePutInsertsMultilineForced(t *testing.T) {
	t.Parallel()

	fake := &fakeRun{}
	store := &Store{run: fake.run}

	err := store.Put(context.Background(), "know2/dev/password", "s3cret")
	require.NoError(t, err)

	require.Len(t, fake.args, 1)
	assert.Equal(t, []string{"insert", "-m", "-f", "know2/dev/password"}, fake.args[0])
	assert.Equal(t, "s3cret\n", fake.inputs[0])
}

func TestStoreGetTrimsTrailingNewline(t *testing.T) {
	t.Parallel()

	fake := &fakeRun{stdout: "s3cret\r\n"}
	store := &Store{run: fake.run}

	got, err := store.Get(context.Background(), "know2/dev/password")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
	assert.Equal(t, []string{"show", "know2/dev/password"}, fake.args[0])
}

func TestStoreGetWrapsStderr(t *testing.T) {
	t.Parallel()

	fake := &fakeRun{stderr: "gpg: decryption failed", err: errors.New("exit status 2")}
	store := &Store{run: fake.run}

	_, err := store.Get(context.Background(), "know2/dev/password")
	require.Error(t, err)
	assert.ErrorContains(t, err, "gpg: decryption failed")
	assert.ErrorContains(t, err, `pass get "know2/dev/password"`)
}

func TestStoreSurfacesUnavailableCommand(t *testing.T) {
	t.Parallel()

	fake := &fakeRun{err: ErrUnavailable}
	store := &Store{run: fake.run}

	err := store.Delete(context.Background(), "know2/dev/password")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestStoreHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	fake := &fakeRun{}
	store := &Store{run: fake.run}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Put(ctx, "know2/dev/password", "s3cret")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, fake.args)
}
