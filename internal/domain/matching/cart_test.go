package matching

import (
	"testing"

	"hive/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func cartFixtures() []entity.CartItem {
	return []entity.CartItem{
		{ID: "1", Name: "Milk", Quantity: 1, Price: 3.99, AddedBy: "Alex"},
		{ID: "2", Name: "Bread", Quantity: 2, Price: 2.49, AddedBy: "Sarah"},
		{ID: "3", Name: "Dish Soap", Quantity: 1, Price: 3.49, AddedBy: "Dave", Completed: true},
	}
}

func TestFilterCartPendingTotal(t *testing.T) {
	items := cartFixtures()[:2]
	pending := false

	got := FilterCart(items, CartFilter{Completed: &pending})

	assert.Len(t, got, 2)
	assert.InDelta(t, 8.97, CartTotal(got), 1e-9)
}

func TestCartFilterForStatus(t *testing.T) {
	items := cartFixtures()

	tests := []struct {
		status string
		search string
		want   []string
	}{
		{status: "all", want: []string{"1", "2", "3"}},
		{status: "", want: []string{"1", "2", "3"}},
		{status: "pending", want: []string{"1", "2"}},
		{status: "Completed", want: []string{"3"}},
		{status: "all", search: "sarah", want: []string{"2"}},
		{status: "completed", search: "milk", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.status+"/"+tt.search, func(t *testing.T) {
			got := FilterCart(items, CartFilterForStatus(tt.status, tt.search))
			gotIDs := make([]string, 0, len(got))
			for _, item := range got {
				gotIDs = append(gotIDs, item.ID)
			}
			assert.Equal(t, tt.want, gotIDs)
		})
	}
}

func TestSummarizeCart(t *testing.T) {
	summary := SummarizeCart(cartFixtures())

	assert.Equal(t, CartSummary{Pending: 2, Completed: 1, Total: 12.46}, summary)
	assert.Equal(t, CartSummary{}, SummarizeCart(nil))
}
