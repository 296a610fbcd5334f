package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

const uploadThingAPIRoot = "https://api.uploadthing.com"

type uploadThingToken struct {
	APIKey string `json:"apiKey"`
	AppID  string `json:"appId"`
}

type prepareUploadRequest struct {
	FileName string `json:"fileName"`
	FileSize int    `json:"fileSize"`
	FileType string `json:"fileType,omitempty"`
}

type prepareUploadResponse struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// UploadThingStore uploads files to UploadThing and returns their CDN URL.
type UploadThingStore struct {
	apiKey  string
	appID   string
	apiRoot string
	client  httpDoer
}

// NewUploadThingStore decodes the base64 UPLOADTHING_TOKEN payload.
func NewUploadThingStore(token string) (*UploadThingStore, error) {
	decoded, err := decodeUploadThingToken(strings.TrimSpace(token))
	if err != nil {
		return nil, err
	}
	if decoded.APIKey == "" || decoded.AppID == "" {
		return nil, errors.New("missing UploadThing credentials (apiKey/appId)")
	}
	return &UploadThingStore{
		apiKey:  decoded.APIKey,
		appID:   decoded.AppID,
		apiRoot: uploadThingAPIRoot,
		client:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// SetHTTPClient swaps the transport, mainly for tests.
func (s *UploadThingStore) SetHTTPClient(client httpDoer) {
	if client == nil {
		s.client = &http.Client{Timeout: 30 * time.Second}
		return
	}
	s.client = client
}

// SetAPIRoot overrides the API base address.
func (s *UploadThingStore) SetAPIRoot(root string) {
	s.apiRoot = strings.TrimRight(strings.TrimSpace(root), "/")
}

// Put prepares an upload slot, sends the file and returns its public URL.
func (s *UploadThingStore) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}

	uploadURL, key, err := s.prepareUpload(ctx, name, contentType, len(data))
	if err != nil {
		return "", err
	}
	if err := s.putMultipartFile(ctx, uploadURL, name, contentType, data); err != nil {
		return "", err
	}
	return fmt.Sprintf("https://%s.ufs.sh/f/%s", s.appID, key), nil
}

func (s *UploadThingStore) prepareUpload(ctx context.Context, fileName, contentType string, fileSize int) (string, string, error) {
	body, err := json.Marshal(prepareUploadRequest{
		FileName: fileName,
		FileSize: fileSize,
		FileType: strings.TrimSpace(contentType),
	})
	if err != nil {
		return "", "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiRoot+"/v7/prepareUpload", bytes.NewReader(body))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-uploadthing-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", "", fmt.Errorf("uploadthing prepare failed (%s): %s", resp.Status, strings.TrimSpace(string(respBody)))
	}

	var prepared prepareUploadResponse
	if err := json.Unmarshal(respBody, &prepared); err != nil {
		return "", "", fmt.Errorf("uploadthing prepare parse failed: %w", err)
	}
	if prepared.URL == "" || prepared.Key == "" {
		return "", "", errors.New("uploadthing prepare returned missing url/key")
	}
	return prepared.URL, prepared.Key, nil
}

func (s *UploadThingStore) putMultipartFile(ctx context.Context, uploadURL, fileName, contentType string, data []byte) error {
	if strings.TrimSpace(contentType) == "" {
		contentType = "application/octet-stream"
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return err
	}
	if _, err := part.Write(data); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("x-uploadthing-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	respBody, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("uploadthing upload failed (%s): %s", resp.Status, strings.TrimSpace(string(respBody)))
}

func decodeUploadThingToken(token string) (*uploadThingToken, error) {
	if token == "" {
		return nil, errors.New("UPLOADTHING_TOKEN is required")
	}

	decoders := []func(string) ([]byte, error){
		base64.StdEncoding.DecodeString,
		base64.RawStdEncoding.DecodeString,
		base64.URLEncoding.DecodeString,
		base64.RawURLEncoding.DecodeString,
	}

	var lastErr error
	for _, decode := range decoders {
		raw, err := decode(token)
		if err != nil {
			lastErr = err
			continue
		}
		var payload uploadThingToken
		if err := json.Unmarshal(raw, &payload); err != nil {
			lastErr = err
			continue
		}
		return &payload, nil
	}

	return nil, fmt.Errorf("decode UPLOADTHING_TOKEN: %w", lastErr)
}
