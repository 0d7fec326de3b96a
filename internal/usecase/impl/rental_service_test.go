package impl

import (
	"context"
	"testing"

	"hive/internal/domain/entity"
	domainerrors "hive/internal/domain/errors"
	"hive/internal/domain/matching"
	"hive/internal/errors"
	mockSvc "hive/internal/mocks/service"
	"hive/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRentalService(t *testing.T) (usecase.RentalUsecase, *mockSvc.MockQRCodeService) {
	docs, _ := newTestDocuments[[]entity.RentItem](t)
	publisher, _ := newRecordingPublisher(t)
	qrcodes := mockSvc.NewMockQRCodeService(t)

	return NewRentalService(RentalServiceParams{
		Items:         docs,
		Publisher:     publisher,
		QRCodeService: qrcodes,
		Logger:        newDiscardLogger(),
	}), qrcodes
}

func TestRentalService_AddItemDefaults(t *testing.T) {
	srv, _ := newTestRentalService(t)

	items, err := srv.AddItem(context.Background(), testMember, &usecase.AddRentItemInput{
		Name:       "Ladder",
		OwnerName:  "Sam",
		Category:   "Tools",
		RentAmount: 5,
	})

	require.NoError(t, err)
	require.Len(t, items, 6)
	ladder := items[0]
	assert.Equal(t, "Ladder", ladder.Name)
	assert.True(t, ladder.Available)
	assert.Equal(t, entity.DefaultRentImageURL, ladder.ImageURL)
	assert.Equal(t, testMember.ID(), ladder.OwnerID)
}

func TestRentalService_ToggleAvailable(t *testing.T) {
	srv, _ := newTestRentalService(t)
	ctx := context.Background()
	available := true

	before, err := srv.List(ctx, matching.RentalFilter{Available: &available})
	require.NoError(t, err)
	assert.Len(t, before, 4)

	_, err = srv.ToggleAvailable(ctx, testMember, "4")
	require.NoError(t, err)

	after, err := srv.List(ctx, matching.RentalFilter{Available: &available})
	require.NoError(t, err)
	assert.Len(t, after, 5)
}

func TestRentalService_Options(t *testing.T) {
	srv, _ := newTestRentalService(t)

	options := srv.Options()
	options.Categories[0] = "changed"

	assert.Equal(t, entity.RentCategories, srv.Options().Categories)
	assert.NotEmpty(t, options.Durations)
}

func TestRentalService_ListingQRCode(t *testing.T) {
	srv, qrcodes := newTestRentalService(t)
	ctx := context.Background()

	qrcodes.EXPECT().GenerateListingQR("2").Return([]byte("png"), nil)

	png, err := srv.ListingQRCode(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = srv.ListingQRCode(ctx, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
