package handlers

import (
	"net/http"
	"strconv"

	"pg-backend/internal/services"
	"pg-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type RoomHandler struct {
	Service *services.RoomService
}

func NewRoomHandler(s *services.RoomService) *RoomHandler {
	return &RoomHandler{Service: s}
}

func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	room, err := h.Service.GetRoom(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, room)
}

func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Service.ListRooms(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, rooms)
}

// ListFloors handles GET /api/rooms/floors
func (h *RoomHandler) ListFloors(w http.ResponseWriter, r *http.Request) {
	floors, err := h.Service.ListFloors(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, floors)
}

// ListAvailable handles GET /api/rooms/available?floor=N and returns
// rooms on that floor with a free spot
func (h *RoomHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	floor, err := strconv.Atoi(r.URL.Query().Get("floor"))
	if err != nil || floor <= 0 {
		http.Error(w, "floor parameter is required", http.StatusBadRequest)
		return
	}

	rooms, err := h.Service.ListAvailableRooms(r.Context(), floor)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, rooms)
}
