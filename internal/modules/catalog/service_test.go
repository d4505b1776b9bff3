package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/repository"
)

func TestAllRoomsKeepsSeededOrder(t *testing.T) {
	svc := NewService(repository.NewRoomRepository(domain.DefaultInventory()))

	rooms := svc.AllRooms(context.Background())
	require.Len(t, rooms, 22)
	assert.Equal(t, "101", rooms[0].Number)
	assert.Equal(t, "110", rooms[9].Number)
	assert.Equal(t, "201", rooms[10].Number)
	assert.Equal(t, "301", rooms[18].Number)
}

func TestCategoriesCarryPricing(t *testing.T) {
	svc := NewService(repository.NewRoomRepository(nil))

	cats := svc.Categories(context.Background())
	require.Len(t, cats, 3)
	assert.Equal(t, "Standard", cats[0].DisplayName)
	assert.Equal(t, "80.00", cats[0].PricePerNight.StringFixed(2))
	assert.Equal(t, "Suite", cats[2].DisplayName)
	assert.Equal(t, "300.00", cats[2].PricePerNight.StringFixed(2))
	assert.NotEmpty(t, cats[1].Description)
}
