package services

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/prospect-evaluator/internal/models"
	"github.com/jstittsworth/prospect-evaluator/pkg/database"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func setupStore(t *testing.T) (*HistoricalStore, *database.DB) {
	t.Helper()

	db, err := database.NewMemoryConnection()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.HistoricalPlayer{}))

	// The shared in-memory database survives across tests in this package.
	require.NoError(t, db.Exec("DELETE FROM historical_players").Error)
	t.Cleanup(func() { _ = db.Close() })

	store := NewHistoricalStore(db, quietLogger(), 5, 5*time.Second)
	return store, db
}

func seedPlayers(t *testing.T, db *database.DB, players []models.HistoricalPlayer) {
	t.Helper()
	for i := range players {
		require.NoError(t, db.Create(&players[i]).Error)
	}
}

func TestHistoricalStoreFetchAll(t *testing.T) {
	store, db := setupStore(t)
	seedPlayers(t, db, []models.HistoricalPlayer{
		{Name: "Charlie Veteran", Position: "PG", CareerGames: 900, CareerSeasons: 12},
		{Name: "Alice Starter", Position: "SG", CareerGames: 450, CareerSeasons: 6},
		{Name: "Bob Washout", Position: "SF", CareerGames: 40, CareerSeasons: 1},
	})

	players, err := store.FetchAll(context.Background())
	require.NoError(t, err)

	// The eligibility floor is applied at the query, sorted by name.
	require.Len(t, players, 2)
	assert.Equal(t, "Alice Starter", players[0].Name)
	assert.Equal(t, "Charlie Veteran", players[1].Name)
}

func TestHistoricalStoreFetchAllEmpty(t *testing.T) {
	store, _ := setupStore(t)

	players, err := store.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestHistoricalStoreList(t *testing.T) {
	store, db := setupStore(t)
	seedPlayers(t, db, []models.HistoricalPlayer{
		{Name: "Dave", Position: "C", CareerGames: 300},
		{Name: "Alice", Position: "PG", CareerGames: 500},
		{Name: "Bob", Position: "SG", CareerGames: 400},
		{Name: "Carol", Position: "SF", CareerGames: 600},
		{Name: "Eve", Position: "PF", CareerGames: 20},
	})

	t.Run("first page", func(t *testing.T) {
		players, total, err := store.List(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(4), total, "ineligible players are excluded from the count")
		require.Len(t, players, 2)
		assert.Equal(t, "Alice", players[0].Name)
		assert.Equal(t, "Bob", players[1].Name)
	})

	t.Run("second page", func(t *testing.T) {
		players, total, err := store.List(context.Background(), 2, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		require.Len(t, players, 2)
		assert.Equal(t, "Carol", players[0].Name)
		assert.Equal(t, "Dave", players[1].Name)
	})

	t.Run("past the end", func(t *testing.T) {
		players, total, err := store.List(context.Background(), 5, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		assert.Empty(t, players)
	})
}
