package getsfattr_test

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partiallyordered/getsfattr"
)

func TestCollect_ZeroAttributes(t *testing.T) {
	store := getsfattr.NewMemoryStore()
	store.AddFile("empty")

	r := getsfattr.Collect(context.Background(), "empty", getsfattr.WithStore(store))
	require.NoError(t, r.Err)
	assert.Equal(t, "empty", r.File)
	assert.NotNil(t, r.Attrs)
	assert.Empty(t, r.Attrs)
}

func TestCollect_SingleAttribute(t *testing.T) {
	store := getsfattr.NewMemoryStore()
	store.Set("a.txt", "user.note", []byte{0x41, 0x42})

	tests := []struct {
		enc  getsfattr.Encoding
		want string
	}{
		{getsfattr.EncodingUTF8, "AB"},
		{getsfattr.EncodingBase64, "QUI="},
		{getsfattr.EncodingEscaped, "AB"},
	}

	for _, tt := range tests {
		t.Run(tt.enc.String(), func(t *testing.T) {
			r := getsfattr.Collect(context.Background(), "a.txt",
				getsfattr.WithStore(store),
				getsfattr.WithEncoding(tt.enc),
			)
			require.NoError(t, r.Err)
			assert.Equal(t, map[string]string{"user.note": tt.want}, r.Attrs)
		})
	}
}

func TestCollect_UTF8DropsInvalidValues(t *testing.T) {
	store := getsfattr.NewMemoryStore()
	store.Set("f", "user.bad", []byte{0xff})
	store.Set("f", "user.good", []byte("ok"))

	r := getsfattr.Collect(context.Background(), "f",
		getsfattr.WithStore(store),
		getsfattr.WithEncoding(getsfattr.EncodingUTF8),
	)
	require.NoError(t, r.Err)
	assert.Equal(t, map[string]string{"user.good": "ok"}, r.Attrs)
}

func TestCollect_DropsInvalidNames(t *testing.T) {
	store := getsfattr.NewMemoryStore()
	store.Set("f", "user.ok", []byte("v"))
	store.AddRawName("f", "user.\xff\xfe")

	r := getsfattr.Collect(context.Background(), "f", getsfattr.WithStore(store))
	require.NoError(t, r.Err)
	assert.Equal(t, map[string]string{"user.ok": "v"}, r.Attrs)
}

func TestCollect_ListFailure(t *testing.T) {
	store := getsfattr.NewMemoryStore()

	r := getsfattr.Collect(context.Background(), "missing", getsfattr.WithStore(store))
	require.Error(t, r.Err)
	assert.Nil(t, r.Attrs)

	var listErr *getsfattr.ListNamesError
	require.ErrorAs(t, r.Err, &listErr)
	assert.Equal(t, "missing", listErr.File)
	assert.True(t, errors.Is(r.Err, fs.ErrNotExist))
}

func TestCollect_GetFailureAbortsFile(t *testing.T) {
	store := getsfattr.NewMemoryStore()
	store.Set("f", "user.a", []byte("a"))
	store.SetGetError("f", "user.b", fs.ErrPermission)
	store.Set("f", "user.c", []byte("c"))

	r := getsfattr.Collect(context.Background(), "f", getsfattr.WithStore(store))

	var getErr *getsfattr.GetValueError
	require.ErrorAs(t, r.Err, &getErr)
	assert.Equal(t, "user.b", getErr.Name)
	assert.Equal(t, "f", getErr.File)
	assert.ErrorIs(t, r.Err, fs.ErrPermission)
	assert.Nil(t, r.Attrs, "no partial map on failure")
}

func TestCollect_NoValue(t *testing.T) {
	store := getsfattr.NewMemoryStore()
	store.SetNoValue("f", "user.vanished")

	r := getsfattr.Collect(context.Background(), "f", getsfattr.WithStore(store))

	var noVal *getsfattr.NoValueError
	require.ErrorAs(t, r.Err, &noVal)
	assert.Equal(t, "user.vanished", noVal.Name)
}

func TestCollect_CancelledContext(t *testing.T) {
	store := getsfattr.NewMemoryStore()
	store.AddFile("f")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := getsfattr.Collect(ctx, "f", getsfattr.WithStore(store))
	assert.ErrorIs(t, r.Err, context.Canceled)
	assert.True(t, getsfattr.IsStructural(r.Err))
}

func TestCollect_Idempotent(t *testing.T) {
	store := getsfattr.NewMemoryStore()
	store.Set("f", "user.a", []byte{0x00, 0x7f, 'x'})
	store.Set("f", "user.b", []byte("text"))

	first := getsfattr.Collect(context.Background(), "f", getsfattr.WithStore(store))
	second := getsfattr.Collect(context.Background(), "f", getsfattr.WithStore(store))

	require.NoError(t, first.Err)
	assert.Equal(t, first, second)
}
