package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"dreamydestiny/models"
)

// fakeRoomRepo is an in-memory RoomRepository recording the last range it
// was queried with.
type fakeRoomRepo struct {
	rooms     []bson.M
	lastRange models.PriceRange
	err       error
}

func (f *fakeRoomRepo) GetAll() ([]bson.M, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rooms, nil
}

func (f *fakeRoomRepo) GetByPriceRange(rng models.PriceRange) ([]bson.M, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastRange = rng
	var out []bson.M
	for _, room := range f.rooms {
		price, _ := room["price_per_night"].(float64)
		if rng.Min != nil && price < *rng.Min {
			continue
		}
		if rng.Max != nil && price > *rng.Max {
			continue
		}
		out = append(out, room)
	}
	return out, nil
}

func (f *fakeRoomRepo) GetByID(id primitive.ObjectID) (bson.M, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, room := range f.rooms {
		if room["_id"] == id {
			return room, nil
		}
	}
	return nil, nil
}

func roomDoc(name string, price float64) bson.M {
	return bson.M{"_id": primitive.NewObjectID(), "room_name": name, "price_per_night": price}
}

func setupRoomRouter(t *testing.T, repo *fakeRoomRepo) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewRoomHandler(repo, nil)
	r := gin.New()
	r.GET("/featured-rooms", h.FeaturedRoomsHandler)
	r.GET("/rooms", h.ListRoomsHandler)
	r.GET("/room-details/:id", h.RoomDetailsHandler)
	return r
}

func TestFeaturedRooms_ReturnsAll(t *testing.T) {
	repo := &fakeRoomRepo{rooms: []bson.M{
		roomDoc("Ocean View", 120),
		roomDoc("Garden Suite", 250),
	}}
	r := setupRoomRouter(t, repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/featured-rooms", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var rooms []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	assert.Len(t, rooms, 2)
}

func TestFeaturedRooms_EmptyStore(t *testing.T) {
	r := setupRoomRouter(t, &fakeRoomRepo{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/featured-rooms", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestListRooms_NoBoundsReturnsAll(t *testing.T) {
	repo := &fakeRoomRepo{rooms: []bson.M{
		roomDoc("Ocean View", 120),
		roomDoc("Garden Suite", 250),
	}}
	r := setupRoomRouter(t, repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rooms", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var rooms []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	assert.Len(t, rooms, 2)
	assert.Nil(t, repo.lastRange.Min)
	assert.Nil(t, repo.lastRange.Max)
}

func TestListRooms_InclusivePriceFilter(t *testing.T) {
	repo := &fakeRoomRepo{rooms: []bson.M{
		roomDoc("Budget", 80),
		roomDoc("Mid", 150),
		roomDoc("Luxury", 400),
	}}
	r := setupRoomRouter(t, repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rooms?minPrice=80&maxPrice=150", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var rooms []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	require.Len(t, rooms, 2)
	require.NotNil(t, repo.lastRange.Min)
	require.NotNil(t, repo.lastRange.Max)
	assert.Equal(t, 80.0, *repo.lastRange.Min)
	assert.Equal(t, 150.0, *repo.lastRange.Max)
}

func TestListRooms_NonNumericBound(t *testing.T) {
	r := setupRoomRouter(t, &fakeRoomRepo{})

	for _, query := range []string{"minPrice=cheap", "maxPrice=expensive", "minPrice=10&maxPrice=x"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rooms?"+query, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestRoomDetails_Found(t *testing.T) {
	room := roomDoc("Ocean View", 120)
	repo := &fakeRoomRepo{rooms: []bson.M{room}}
	r := setupRoomRouter(t, repo)

	id := room["_id"].(primitive.ObjectID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/room-details/"+id.Hex(), nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Ocean View", got["room_name"])
}

func TestRoomDetails_NotFoundIsNull(t *testing.T) {
	r := setupRoomRouter(t, &fakeRoomRepo{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/room-details/"+primitive.NewObjectID().Hex(), nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestRoomDetails_MalformedID(t *testing.T) {
	r := setupRoomRouter(t, &fakeRoomRepo{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/room-details/not-an-object-id", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
