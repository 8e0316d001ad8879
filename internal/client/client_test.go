package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pet-adoption/internal/dto"

	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestWithTokenIsolation(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, dto.UserResponse{ID: "u1"})
	}))
	defer srv.Close()

	base := New(srv.URL + "/")
	alice := base.WithToken("alice-token")
	bob := base.WithToken("bob-token")

	ctx := context.Background()
	_, err := alice.Profile(ctx)
	require.NoError(t, err)
	_, err = bob.Profile(ctx)
	require.NoError(t, err)
	_, err = base.Profile(ctx)
	require.NoError(t, err)

	require.Equal(t, []string{"Bearer alice-token", "Bearer bob-token", ""}, seen)
	require.Empty(t, base.Token())
	require.Equal(t, "alice-token", alice.Token())
}

func TestLoginAndErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var req dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "pw" {
			writeJSON(w, http.StatusUnauthorized, dto.HTTPError{Message: "invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, dto.LoginResponse{AccessToken: "tok", TokenType: "bearer", User: dto.UserResponse{Email: req.Email}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Login(context.Background(), "alice@example.com", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok", resp.AccessToken)
	require.Equal(t, "alice@example.com", resp.User.Email)

	_, err = c.Login(context.Background(), "alice@example.com", "bad")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "invalid credentials", apiErr.Message)
	require.Contains(t, apiErr.Error(), "401")
}

func TestNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Ping(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, WithTimeout(time.Second)).Profile(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	require.False(t, errors.As(err, &apiErr))
}

func TestPetsEndpoints(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/pets", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			require.Equal(t, "dog", r.URL.Query().Get("category"))
			require.Equal(t, "shiba inu", r.URL.Query().Get("q"))
			writeJSON(w, http.StatusOK, []dto.PetResponse{{ID: "p1"}})
		case http.MethodPost:
			require.NoError(t, r.ParseMultipartForm(1<<20))
			require.Equal(t, "Buddy", r.FormValue("name"))
			require.Equal(t, "9.5", r.FormValue("weight"))
			f, fh, err := r.FormFile("image")
			require.NoError(t, err)
			defer f.Close()
			data, _ := io.ReadAll(f)
			require.Equal(t, "png-bytes", string(data))
			require.Equal(t, "image/png", fh.Header.Get("Content-Type"))
			require.Equal(t, "buddy.png", fh.Filename)
			writeJSON(w, http.StatusCreated, dto.PetResponse{ID: "p2", Name: "Buddy", Available: true})
		}
	})
	mux.HandleFunc("/api/admin/pets", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []dto.PetResponse{{ID: "p1"}, {ID: "p2"}})
	})
	mux.HandleFunc("/api/pets/p1/image", func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	})
	mux.HandleFunc("/api/pets/ghost/image", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, dto.HTTPError{Message: "Pet image not found"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()
	c := New(srv.URL).WithToken("t")

	list, err := c.ListPets(ctx, PetQuery{Category: "dog", Q: "shiba inu"})
	require.NoError(t, err)
	require.Len(t, list, 1)

	all, err := c.ListAllPets(ctx, PetQuery{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	pet, err := c.CreatePet(ctx, dto.CreatePetRequest{Name: "Buddy", Category: "dog", Breed: "Shiba", Gender: "male", Weight: 9.5, Height: 38},
		Image{Filename: "buddy.png", ContentType: "image/png", Data: strings.NewReader("png-bytes")})
	require.NoError(t, err)
	require.Equal(t, "p2", pet.ID)

	ct, data, err := c.PetImage(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "image/png", ct)
	require.Equal(t, "png-bytes", string(data))

	_, _, err = c.PetImage(ctx, "ghost")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestOrdersAndFavorites(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			require.Equal(t, "pending", r.URL.Query().Get("status"))
			writeJSON(w, http.StatusOK, []dto.OrderResponse{{ID: "o1", Status: "pending"}})
			return
		}
		var req dto.CreateOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "p1", req.PetID)
		writeJSON(w, http.StatusCreated, dto.OrderResponse{ID: "o1", PetID: req.PetID, Status: "pending"})
	})
	mux.HandleFunc("/api/orders/o1/status", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		var req dto.UpdateOrderStatusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Status == "rejected" {
			writeJSON(w, http.StatusConflict, dto.HTTPError{Message: "invalid state transition: order is already approved"})
			return
		}
		writeJSON(w, http.StatusOK, dto.OrderResponse{ID: "o1", Status: req.Status})
	})
	favs := map[string]bool{}
	mux.HandleFunc("/api/user/favorites", func(w http.ResponseWriter, r *http.Request) {
		out := []dto.PetResponse{}
		for id := range favs {
			out = append(out, dto.PetResponse{ID: id})
		}
		writeJSON(w, http.StatusOK, out)
	})
	mux.HandleFunc("/api/user/favorites/p1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			favs["p1"] = true
		} else {
			delete(favs, "p1")
		}
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()
	c := New(srv.URL, WithHTTPClient(srv.Client())).WithToken("t")

	o, err := c.SubmitOrder(ctx, dto.CreateOrderRequest{PetID: "p1", ShippingName: "A", ShippingAddress: "B", ShippingPhone: "C"})
	require.NoError(t, err)
	require.Equal(t, "pending", o.Status)

	list, err := c.ListOrders(ctx, "pending")
	require.NoError(t, err)
	require.Len(t, list, 1)

	o, err = c.DecideOrder(ctx, "o1", "approved")
	require.NoError(t, err)
	require.Equal(t, "approved", o.Status)

	_, err = c.DecideOrder(ctx, "o1", "rejected")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)

	require.NoError(t, c.AddFavorite(ctx, "p1"))
	got, err := c.Favorites(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NoError(t, c.RemoveFavorite(ctx, "p1"))
	got, err = c.Favorites(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestRegisterAndRefresh(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req dto.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Email == "taken@example.com" {
			writeJSON(w, http.StatusBadRequest, dto.HTTPError{Message: "Email already registered"})
			return
		}
		writeJSON(w, http.StatusCreated, dto.UserResponse{ID: "u1", Email: req.Email, Role: "user"})
	})
	mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		var req dto.RefreshRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(w, http.StatusOK, dto.LoginResponse{AccessToken: "new", RefreshToken: req.RefreshToken + "-rotated"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()
	c := New(srv.URL)
	u, err := c.Register(ctx, dto.RegisterRequest{Email: "bob@example.com", Password: "secret1", Name: "Bob"})
	require.NoError(t, err)
	require.Equal(t, "user", u.Role)

	_, err = c.Register(ctx, dto.RegisterRequest{Email: "taken@example.com", Password: "secret1", Name: "Bob"})
	require.ErrorContains(t, err, "Email already registered")

	resp, err := c.Refresh(ctx, "old")
	require.NoError(t, err)
	require.Equal(t, "old-rotated", resp.RefreshToken)
}
