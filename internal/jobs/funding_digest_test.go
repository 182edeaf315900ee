package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/Dias221467/Giftwish/internal/metrics"
	"github.com/Dias221467/Giftwish/internal/mockdata"
	"github.com/Dias221467/Giftwish/internal/models"
	"github.com/Dias221467/Giftwish/internal/repository/memory"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFundingDigest_Run(t *testing.T) {
	m := metrics.New()
	digest := NewFundingDigest(memory.NewStore(mockdata.Default()).Wishlists(), m)

	result, err := digest.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, DigestResult{Wishlists: 4, Items: 7, Overfunded: 1, FlagMismatch: 2}, result)
	assert.Equal(t, 4, testutil.CollectAndCount(m.FundingPercent))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Overfunded))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.FlagMismatch))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.FundingPercent.WithLabelValues(mockdata.WishlistGraduation.Hex())))
}

func TestFundingDigest_NilMetrics(t *testing.T) {
	digest := NewFundingDigest(memory.NewStore(mockdata.Default()).Wishlists(), nil)

	_, err := digest.Run(context.Background())
	assert.NoError(t, err)
}

type failingWishlists struct{}

func (failingWishlists) GetWishlistByID(context.Context, primitive.ObjectID) (*models.Wishlist, error) {
	return nil, errors.New("down")
}

func (failingWishlists) GetAllWishlists(context.Context) ([]models.Wishlist, error) {
	return nil, errors.New("down")
}

func (failingWishlists) GetWishlistsByUser(context.Context, primitive.ObjectID) ([]models.Wishlist, error) {
	return nil, errors.New("down")
}

func TestFundingDigest_RepositoryError(t *testing.T) {
	_, err := NewFundingDigest(failingWishlists{}, nil).Run(context.Background())
	assert.ErrorContains(t, err, "failed to fetch wishlists")
}
