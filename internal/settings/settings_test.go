package settings_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dealer-catalog/internal/settings"
	"github.com/donaldgifford/dealer-catalog/internal/store"
	storeMocks "github.com/donaldgifford/dealer-catalog/internal/store/mocks"
	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

func setting(key, value string) *domain.Setting {
	return &domain.Setting{Key: key, Value: json.RawMessage(value)}
}

func TestService_GetCaches(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		GetSetting(mock.Anything, "hero").
		Return(setting("hero", `{"a":1}`), nil).
		Once()

	svc := settings.New(ms, 16, time.Minute)
	ctx := context.Background()

	for range 3 {
		got, err := svc.Get(ctx, "hero")
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":1}`, string(got))
	}
}

func TestService_PutInvalidatesCache(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		GetSetting(mock.Anything, "hero").
		Return(setting("hero", `1`), nil).
		Once()
	ms.EXPECT().
		PutSetting(mock.Anything, "hero", json.RawMessage(`2`)).
		Return(nil).
		Once()
	ms.EXPECT().
		GetSetting(mock.Anything, "hero").
		Return(setting("hero", `2`), nil).
		Once()

	svc := settings.New(ms, 16, time.Minute)
	ctx := context.Background()

	got, err := svc.Get(ctx, "hero")
	require.NoError(t, err)
	assert.Equal(t, "1", string(got))

	require.NoError(t, svc.Put(ctx, "hero", json.RawMessage(`2`)))

	got, err = svc.Get(ctx, "hero")
	require.NoError(t, err)
	assert.Equal(t, "2", string(got))
}

func TestService_Validation(t *testing.T) {
	t.Parallel()

	svc := settings.New(storeMocks.NewMockStore(t), 16, time.Minute)
	ctx := context.Background()

	_, err := svc.Get(ctx, "Bad Key!")
	require.ErrorIs(t, err, settings.ErrInvalidKey)

	require.ErrorIs(t, svc.Put(ctx, "", json.RawMessage(`1`)), settings.ErrInvalidKey)
	require.Error(t, svc.Put(ctx, "ok", json.RawMessage(`{nope`)))
}

func TestService_FeaturedIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setting *domain.Setting
		err     error
		want    []string
		wantErr bool
	}{
		{
			name:    "json array",
			setting: setting(settings.KeyFeatured, `["b", "a", "b", " "]`),
			want:    []string{"b", "a"},
		},
		{
			name:    "numeric ids",
			setting: setting(settings.KeyFeatured, `[12, 7]`),
			want:    []string{"12", "7"},
		},
		{
			name:    "comma separated string",
			setting: setting(settings.KeyFeatured, `"x, y,,z"`),
			want:    []string{"x", "y", "z"},
		},
		{
			name: "unset",
			err:  store.ErrNotFound,
			want: []string{},
		},
		{
			name:    "store failure",
			err:     errors.New("db down"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			ms.EXPECT().
				GetSetting(mock.Anything, settings.KeyFeatured).
				Return(tt.setting, tt.err).
				Once()

			got, err := settings.New(ms, 16, time.Minute).FeaturedIDs(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Banner(t *testing.T) {
	t.Parallel()

	t.Run("unset is disabled", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().GetSetting(mock.Anything, settings.KeyBanner).Return(nil, store.ErrNotFound).Once()

		b, err := settings.New(ms, 16, time.Minute).Banner(context.Background())
		require.NoError(t, err)
		assert.False(t, b.Enabled)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		want := domain.Banner{
			Enabled:  true,
			ImageURL: "https://cdn.example.com/spring.jpg",
			Text: domain.Translation{
				DE: domain.TextString("Frühlingsaktion"),
				FR: domain.TextString("Action de printemps"),
				EN: domain.TextString("Spring sale"),
			},
		}

		var stored json.RawMessage
		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			PutSetting(mock.Anything, settings.KeyBanner, mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, v json.RawMessage) error {
				stored = v
				return nil
			}).
			Once()
		ms.EXPECT().
			GetSetting(mock.Anything, settings.KeyBanner).
			RunAndReturn(func(context.Context, string) (*domain.Setting, error) {
				return setting(settings.KeyBanner, string(stored)), nil
			}).
			Once()

		svc := settings.New(ms, 16, time.Minute)
		require.NoError(t, svc.SetBanner(context.Background(), want))

		got, err := svc.Banner(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestService_NoStore(t *testing.T) {
	t.Parallel()

	svc := settings.New(nil, 16, time.Minute)
	ctx := context.Background()

	_, err := svc.Get(ctx, settings.KeyBanner)
	require.ErrorIs(t, err, store.ErrNotFound)

	ids, err := svc.FeaturedIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	banner, err := svc.Banner(ctx)
	require.NoError(t, err)
	assert.False(t, banner.Enabled)

	require.ErrorIs(t, svc.Put(ctx, "hero", json.RawMessage(`1`)), settings.ErrNoStore)
}
