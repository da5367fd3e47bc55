package service

import (
	"context"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/qamees-next/internal/config"
	"github.com/qamees-next/internal/constants"
	"github.com/qamees-next/internal/logger"
	"github.com/qamees-next/internal/storage"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
)

var allowedUploadScenes = map[string]struct{}{
	constants.UploadSceneProduct: {},
	constants.UploadSceneBanner:  {},
	constants.UploadSceneDesign:  {},
}

// UploadResult 上传结果
type UploadResult struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

// UploadService 文件上传服务
type UploadService struct {
	cfg     config.UploadConfig
	storage storage.ObjectStorage
	now     func() time.Time
}

// NewUploadService 创建文件上传服务实例
func NewUploadService(cfg config.UploadConfig, store storage.ObjectStorage) *UploadService {
	return &UploadService{cfg: cfg, storage: store, now: time.Now}
}

// SaveFile 保存 multipart 上传的文件
func (s *UploadService) SaveFile(ctx context.Context, file *multipart.FileHeader, scene string) (*UploadResult, error) {
	if file == nil {
		return nil, ErrUploadFileMissing
	}
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return s.Save(ctx, src, file.Filename, file.Size, scene)
}

// Save 校验并写入存储后端
func (s *UploadService) Save(ctx context.Context, src io.ReadSeeker, filename string, size int64, scene string) (*UploadResult, error) {
	if src == nil || size <= 0 {
		return nil, ErrUploadFileMissing
	}
	normalizedScene, ok := normalizeUploadScene(scene)
	if !ok {
		return nil, ErrUploadSceneInvalid
	}
	if s.cfg.MaxSize > 0 && size > s.cfg.MaxSize {
		return nil, ErrUploadTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if len(s.cfg.AllowedExtensions) > 0 {
		if ext == "" || !isAllowedExtension(ext, s.cfg.AllowedExtensions) {
			return nil, ErrUploadTypeInvalid
		}
	}

	// 读取文件头部识别 MIME 类型
	buffer := make([]byte, 512)
	n, err := src.Read(buffer)
	if err != nil && err != io.EOF {
		return nil, err
	}
	contentType := http.DetectContentType(buffer[:n])
	if len(s.cfg.AllowedTypes) > 0 && !isAllowedContentType(contentType, s.cfg.AllowedTypes) {
		return nil, ErrUploadTypeInvalid
	}

	result := &UploadResult{ContentType: contentType, Size: size}
	if strings.HasPrefix(contentType, "image/") {
		width, height, err := decodeImageDimensions(src, contentType)
		if err != nil {
			logger.Debugw("upload_image_decode_failed", "filename", filename, "error", err)
			return nil, ErrUploadTypeInvalid
		}
		if s.cfg.MaxWidth > 0 && width > s.cfg.MaxWidth {
			return nil, ErrUploadTooLarge
		}
		if s.cfg.MaxHeight > 0 && height > s.cfg.MaxHeight {
			return nil, ErrUploadTooLarge
		}
		result.Width = width
		result.Height = height
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	now := s.now()
	key := path.Join(normalizedScene, now.Format("2006"), now.Format("01"), uuid.New().String()+ext)
	url, err := s.storage.Put(ctx, key, contentType, src, size)
	if err != nil {
		logger.Errorw("upload_storage_put_failed",
			"driver", s.storage.Driver(),
			"key", key,
			"error", err,
		)
		return nil, err
	}
	result.URL = url
	result.Key = key
	return result, nil
}

func normalizeUploadScene(raw string) (string, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return constants.UploadSceneProduct, true
	}
	_, ok := allowedUploadScenes[value]
	return value, ok
}

func isAllowedContentType(contentType string, allowed []string) bool {
	for _, t := range allowed {
		if strings.EqualFold(contentType, strings.TrimSpace(t)) {
			return true
		}
	}
	return false
}

func isAllowedExtension(ext string, allowed []string) bool {
	for _, allowedExt := range allowed {
		normalized := strings.ToLower(strings.TrimSpace(allowedExt))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if strings.EqualFold(ext, normalized) {
			return true
		}
	}
	return false
}

func decodeImageDimensions(src io.ReadSeeker, contentType string) (int, int, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return 0, 0, err
	}
	if strings.EqualFold(contentType, "image/webp") {
		return decodeWebPDimensions(src)
	}
	cfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return 0, 0, fmt.Errorf("decode image config: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// decodeWebPDimensions 按 RIFF chunk 读取 WebP 宽高
func decodeWebPDimensions(src io.Reader) (int, int, error) {
	header := make([]byte, 12)
	if _, err := io.ReadFull(src, header); err != nil {
		return 0, 0, err
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WEBP" {
		return 0, 0, fmt.Errorf("invalid webp header")
	}

	chunkHeader := make([]byte, 8)
	for {
		if _, err := io.ReadFull(src, chunkHeader); err != nil {
			return 0, 0, err
		}
		chunkType := string(chunkHeader[0:4])
		chunkSize := int64(binary.LittleEndian.Uint32(chunkHeader[4:8]))
		// chunk 按偶数字节对齐
		padded := chunkSize + chunkSize%2

		switch chunkType {
		case "VP8X", "VP8 ", "VP8L":
			if chunkSize > 64 {
				chunkSize = 64
			}
			data := make([]byte, chunkSize)
			if _, err := io.ReadFull(src, data); err != nil {
				return 0, 0, err
			}
			return parseWebPChunk(chunkType, data)
		default:
			if _, err := io.CopyN(io.Discard, src, padded); err != nil {
				return 0, 0, err
			}
		}
	}
}

func parseWebPChunk(chunkType string, data []byte) (int, int, error) {
	switch chunkType {
	case "VP8X":
		if len(data) < 10 {
			return 0, 0, fmt.Errorf("VP8X chunk too short")
		}
		width := 1 + int(data[4]) + int(data[5])<<8 + int(data[6])<<16
		height := 1 + int(data[7]) + int(data[8])<<8 + int(data[9])<<16
		return width, height, nil
	case "VP8 ":
		if len(data) < 10 {
			return 0, 0, fmt.Errorf("VP8 chunk too short")
		}
		width := int(binary.LittleEndian.Uint16(data[6:8]) & 0x3FFF)
		height := int(binary.LittleEndian.Uint16(data[8:10]) & 0x3FFF)
		return width, height, nil
	default:
		if len(data) < 5 || data[0] != 0x2f {
			return 0, 0, fmt.Errorf("invalid VP8L chunk")
		}
		bits := binary.LittleEndian.Uint32(data[1:5])
		return int(bits&0x3FFF) + 1, int((bits>>14)&0x3FFF) + 1, nil
	}
}
