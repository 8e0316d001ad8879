package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"

	"pet-adoption/internal/dto"
)

// PetQuery 寵物清單篩選條件
type PetQuery struct {
	Category string
	Q        string
}

func (q PetQuery) encode() string {
	v := url.Values{}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Q != "" {
		v.Set("q", q.Q)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (c *Client) ListPets(ctx context.Context, q PetQuery) ([]dto.PetResponse, error) {
	var out []dto.PetResponse
	if err := c.sendJSON(ctx, http.MethodGet, "/api/pets"+q.encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAllPets 需要管理員令牌
func (c *Client) ListAllPets(ctx context.Context, q PetQuery) ([]dto.PetResponse, error) {
	var out []dto.PetResponse
	if err := c.sendJSON(ctx, http.MethodGet, "/api/admin/pets"+q.encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Image 上傳用的圖片內容
type Image struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

// CreatePet 以 multipart/form-data 上傳，需要管理員令牌
func (c *Client) CreatePet(ctx context.Context, in dto.CreatePetRequest, img Image) (*dto.PetResponse, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	fields := [][2]string{
		{"name", in.Name},
		{"category", in.Category},
		{"breed", in.Breed},
		{"gender", in.Gender},
		{"weight", strconv.FormatFloat(in.Weight, 'f', -1, 64)},
		{"height", strconv.FormatFloat(in.Height, 'f', -1, 64)},
		{"description", in.Description},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, fmt.Errorf("failed to build form: %w", err)
		}
	}

	filename := img.Filename
	if filename == "" {
		filename = "image"
	}
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	if img.ContentType != "" {
		h.Set("Content-Type", img.ContentType)
	}
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	if img.Data != nil {
		if _, err := io.Copy(part, img.Data); err != nil {
			return nil, fmt.Errorf("failed to read image: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/pets", buf, w.FormDataContentType())
	if err != nil {
		return nil, err
	}
	var out dto.PetResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PetImage 回傳圖片的 Content-Type 與內容
func (c *Client) PetImage(ctx context.Context, petID string) (string, []byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/pets/"+url.PathEscape(petID)+"/image", nil, "")
	if err != nil {
		return "", nil, err
	}
	req.Header.Del("Accept")
	resp, err := c.http.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("GET %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", nil, decodeError(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read image: %w", err)
	}
	return resp.Header.Get("Content-Type"), data, nil
}

func (c *Client) Favorites(ctx context.Context) ([]dto.PetResponse, error) {
	var out []dto.PetResponse
	if err := c.sendJSON(ctx, http.MethodGet, "/api/user/favorites", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddFavorite(ctx context.Context, petID string) error {
	return c.sendJSON(ctx, http.MethodPut, "/api/user/favorites/"+url.PathEscape(petID), nil, nil)
}

func (c *Client) RemoveFavorite(ctx context.Context, petID string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/api/user/favorites/"+url.PathEscape(petID), nil, nil)
}
