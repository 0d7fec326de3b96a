package handler

import (
	"net/http"
	"testing"

	"hive/internal/domain/entity"
	"hive/internal/domain/repository"
	"hive/internal/infra/persistence/document"
	"hive/internal/infra/persistence/memory"
	"hive/internal/infra/validation"
	mockSvc "hive/internal/mocks/service"
	mockUsecase "hive/internal/mocks/usecase"
	"hive/internal/usecase"
	"hive/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDocuments[T any](kv repository.KVStore) repository.DocumentStore[T] {
	return document.New[T](kv, validation.New(), newDiscardLogger())
}

func newQuietPublisher(t *testing.T) *mockSvc.MockEventPublisher {
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishCollectionEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	return publisher
}

func newTestCartHandler(t *testing.T) *CartHandler {
	cartUC := impl.NewCartService(impl.CartServiceParams{
		Items:     newTestDocuments[[]entity.CartItem](memory.NewKVStore()),
		Publisher: newQuietPublisher(t),
		Logger:    newDiscardLogger(),
	})

	return NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: newDiscardLogger()})
}

func TestCartHandler_ListByStatus(t *testing.T) {
	h := newTestCartHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/v1/cart?status=pending", "")
	signIn(c, testMember)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	view := decodeData[usecase.CartView](t, rec)
	assert.Len(t, view.Items, 3)
	for _, item := range view.Items {
		assert.False(t, item.Completed)
	}
	assert.Equal(t, 5, view.Summary.Pending+view.Summary.Completed)
}

func TestCartHandler_AddItemValidation(t *testing.T) {
	h := newTestCartHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/cart", `{"name":"Tea","quantity":0,"price":1,"addedBy":"Sam"}`)
	signIn(c, testMember)
	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newTestContext(http.MethodGet, "/api/v1/cart", "")
	signIn(c, testMember)
	require.NoError(t, h.List(c))
	assert.Len(t, decodeData[usecase.CartView](t, rec).Items, 5, "a rejected add writes nothing")
}

func TestCartHandler_ToggleUnknownIDIsNoop(t *testing.T) {
	h := newTestCartHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/v1/cart/missing/toggle", "", "id", "missing")
	signIn(c, testMember)

	require.NoError(t, h.ToggleCompleted(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[usecase.CartView](t, rec).Items, 5)
}

func TestCartHandler_ResetNeedsModerator(t *testing.T) {
	h := newTestCartHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/cart/reset", "")
	signIn(c, testMember)
	require.NoError(t, h.Reset(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	c, rec = newTestContext(http.MethodPost, "/api/v1/cart/reset", "")
	signIn(c, testModerator)
	require.NoError(t, h.Reset(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRentalHandler_ListQueryParsing(t *testing.T) {
	rentalUC := impl.NewRentalService(impl.RentalServiceParams{
		Items:         newTestDocuments[[]entity.RentItem](memory.NewKVStore()),
		Publisher:     newQuietPublisher(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
		Logger:        newDiscardLogger(),
	})
	h := NewRentalHandler(RentalHandlerParams{RentalUC: rentalUC, Logger: newDiscardLogger()})

	for _, query := range []string{"min_price=abc", "min_price=NaN", "max_price=Inf", "max_price=-infinity"} {
		c, rec := newTestContext(http.MethodGet, "/api/v1/rentals?"+query, "")
		signIn(c, testMember)
		require.NoError(t, h.List(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
		assert.Equal(t, "INVALID_QUERY", decodeEnvelope(t, rec).Error.Code, query)
	}

	c, rec := newTestContext(http.MethodGet, "/api/v1/rentals?available=true&max_price=1000", "")
	signIn(c, testMember)
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	for _, item := range decodeData[[]entity.RentItem](t, rec) {
		assert.True(t, item.Available)
		assert.LessOrEqual(t, item.RentAmount, 1000.0)
	}
}

func TestRentalHandler_QRCode(t *testing.T) {
	rentalUC := mockUsecase.NewMockRentalUsecase(t)
	rentalUC.EXPECT().ListingQRCode(mock.Anything, "2").Return([]byte{0x89, 'P', 'N', 'G'}, nil)
	h := NewRentalHandler(RentalHandlerParams{RentalUC: rentalUC, Logger: newDiscardLogger()})

	c, rec := newTestContext(http.MethodGet, "/api/v1/rentals/2/qrcode", "", "id", "2")
	signIn(c, testMember)

	require.NoError(t, h.QRCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
}

func TestGamePartnerHandler_EditGames(t *testing.T) {
	gamePartnerUC := impl.NewGamePartnerService(impl.GamePartnerServiceParams{
		Partners:  newTestDocuments[[]entity.GamePartner](memory.NewKVStore()),
		Publisher: newQuietPublisher(t),
		Logger:    newDiscardLogger(),
	})
	h := NewGamePartnerHandler(GamePartnerHandlerParams{GamePartnerUC: gamePartnerUC, Logger: newDiscardLogger()})

	c, rec := newTestContext(http.MethodPut, "/api/v1/game-partners/1/games/Chess", `{"skillLevel":"Godlike"}`,
		"id", "1", "game", "Chess")
	signIn(c, testMember)
	require.NoError(t, h.SetSkill(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newTestContext(http.MethodPost, "/api/v1/game-partners/1/games", `{"game":"Go"}`, "id", "1")
	signIn(c, testMember)
	require.NoError(t, h.AddGame(c))
	require.Equal(t, http.StatusOK, rec.Code)

	partners := decodeData[[]entity.GamePartner](t, rec)
	require.NotEmpty(t, partners)
	var first entity.GamePartner
	for _, p := range partners {
		if p.ID == "1" {
			first = p
		}
	}
	assert.True(t, first.HasGame("Go"))

	c, rec = newTestContext(http.MethodDelete, "/api/v1/game-partners/1/games/Go", "", "id", "1", "game", "Go")
	signIn(c, testMember)
	require.NoError(t, h.RemoveGame(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestActivityHandler_List(t *testing.T) {
	activityUC := mockUsecase.NewMockActivityUsecase(t)
	activityUC.EXPECT().
		List(mock.Anything, "hive_cart_items", 5).
		Return([]entity.Activity{{ID: "a1", Key: "hive_cart_items", Action: "added"}}, nil)
	h := NewActivityHandler(activityUC)

	c, rec := newTestContext(http.MethodGet, "/api/v1/activity?key=hive_cart_items&limit=5", "")
	signIn(c, testMember)
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]entity.Activity](t, rec), 1)

	c, rec = newTestContext(http.MethodGet, "/api/v1/activity?limit=ten", "")
	signIn(c, testMember)
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func recordIDs[T entity.Record](items []T) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.RecordID())
	}

	return ids
}

func newTestRoommateHandler(t *testing.T) *RoommateHandler {
	kv := memory.NewKVStore()
	roommateUC := impl.NewRoommateService(impl.RoommateServiceParams{
		Candidates: newTestDocuments[[]entity.RoommateCandidate](kv),
		Profiles:   newTestDocuments[entity.RoommateSeekerProfile](kv),
		Publisher:  newQuietPublisher(t),
		Logger:     newDiscardLogger(),
	})

	return NewRoommateHandler(RoommateHandlerParams{RoommateUC: roommateUC, Logger: newDiscardLogger()})
}

func TestRoommateHandler_SearchByBudget(t *testing.T) {
	h := newTestRoommateHandler(t)

	c, rec := newTestContext(http.MethodGet, "/api/v1/roommates/search?min_budget=900&max_budget=1100", "")
	signIn(c, testMember)
	require.NoError(t, h.SearchCandidates(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"2", "4", "5"}, recordIDs(decodeData[[]entity.RoommateCandidate](t, rec)))

	c, rec = newTestContext(http.MethodGet, "/api/v1/roommates/search?location=downtown&gender=female", "")
	signIn(c, testMember)
	require.NoError(t, h.SearchCandidates(c))
	assert.Equal(t, []string{"4"}, recordIDs(decodeData[[]entity.RoommateCandidate](t, rec)))

	c, rec = newTestContext(http.MethodGet, "/api/v1/roommates/search?max_budget=NaN", "")
	signIn(c, testMember)
	require.NoError(t, h.SearchCandidates(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_QUERY", decodeEnvelope(t, rec).Error.Code)
}

func TestRoommateHandler_SaveProfile(t *testing.T) {
	t.Run("blank interests are rejected and nothing is stored", func(t *testing.T) {
		h := newTestRoommateHandler(t)

		for _, interests := range []string{"", " , "} {
			body := `{"name":"Riley","budget":1150,"location":"Downtown","interests":"` + interests + `"}`
			c, rec := newTestContext(http.MethodPut, "/api/v1/roommates/profile", body)
			signIn(c, testMember)
			require.NoError(t, h.SaveProfile(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code, interests)
			assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code, interests)
		}

		c, rec := newTestContext(http.MethodGet, "/api/v1/roommates/profile", "")
		signIn(c, testMember)
		require.NoError(t, h.GetProfile(c))
		assert.Equal(t, "null", string(decodeEnvelope(t, rec).Data))
	})

	t.Run("saved profile answers with its matches", func(t *testing.T) {
		h := newTestRoommateHandler(t)

		body := `{"name":"Riley","budget":1150,"location":"downtown","interests":"cooking, art"}`
		c, rec := newTestContext(http.MethodPut, "/api/v1/roommates/profile", body)
		signIn(c, testMember)
		require.NoError(t, h.SaveProfile(c))
		require.Equal(t, http.StatusOK, rec.Code)

		out := decodeData[usecase.MatchOutput](t, rec)
		require.NotNil(t, out.Profile)
		assert.Equal(t, []string{"1", "4"}, recordIDs(out.Matches))
	})
}

func TestRideHandler_ListByDay(t *testing.T) {
	autoShareUC := impl.NewAutoShareService(impl.AutoShareServiceParams{
		Shares:    newTestDocuments[[]entity.AutoShare](memory.NewKVStore()),
		Publisher: newQuietPublisher(t),
		Logger:    newDiscardLogger(),
	})
	h := NewRideHandler(RideHandlerParams{AutoShareUC: autoShareUC, Logger: newDiscardLogger()})

	c, rec := newTestContext(http.MethodGet, "/api/v1/rides?day=Saturday", "")
	signIn(c, testMember)
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"3", "5"}, recordIDs(decodeData[[]entity.AutoShare](t, rec)))

	c, rec = newTestContext(http.MethodGet, "/api/v1/rides?day=Friday&vehicle_type=car", "")
	signIn(c, testMember)
	require.NoError(t, h.List(c))
	assert.Equal(t, []string{"1", "4", "5"}, recordIDs(decodeData[[]entity.AutoShare](t, rec)))

	c, rec = newTestContext(http.MethodGet, "/api/v1/rides?day=all", "")
	signIn(c, testMember)
	require.NoError(t, h.List(c))
	assert.Len(t, decodeData[[]entity.AutoShare](t, rec), 5)
}
