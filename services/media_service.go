package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/lib/pq"
	"github.com/shloksagar/backend/config"
	"github.com/shloksagar/backend/model"
	"gorm.io/gorm"
)

// downloadURLExpiry is how long a presigned media download link stays valid
const downloadURLExpiry = 15 * time.Minute

// MediaService lists wallpapers/videos and issues presigned download URLs
// against the S3-compatible media bucket.
type MediaService struct {
	db       *gorm.DB
	s3Client *s3.S3
	bucket   string
	cdnURL   string
}

// NewMediaService creates a new media service from the environment config
func NewMediaService(db *gorm.DB) (*MediaService, error) {
	getEnv, err := config.Get()
	if err != nil {
		return nil, err
	}

	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.NewStaticCredentials(
			getEnv.MEDIA_ACCESS_KEY,
			getEnv.MEDIA_SECRET_KEY,
			"",
		),
		Endpoint:         aws.String(getEnv.MEDIA_ENDPOINT),
		Region:           aws.String(getEnv.MEDIA_REGION),
		S3ForcePathStyle: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create media storage session: %w", err)
	}

	return &MediaService{
		db:       db,
		s3Client: s3.New(sess),
		bucket:   getEnv.MEDIA_BUCKET,
		cdnURL:   getEnv.MEDIA_CDN_URL,
	}, nil
}

// ListWallpapers returns active wallpapers, optionally filtered by tags
func (s *MediaService) ListWallpapers(ctx context.Context, tags []string) ([]model.Wallpaper, error) {
	query := s.db.WithContext(ctx).Where("is_active = ?", true)
	if len(tags) > 0 {
		query = query.Where("tags && ?", pq.Array(tags))
	}

	var wallpapers []model.Wallpaper
	if err := query.Order("created_at DESC").Find(&wallpapers).Error; err != nil {
		return nil, fmt.Errorf("failed to list wallpapers: %w", err)
	}
	return wallpapers, nil
}

// GetWallpaper returns one active wallpaper
func (s *MediaService) GetWallpaper(ctx context.Context, id string) (*model.Wallpaper, error) {
	var wallpaper model.Wallpaper
	if err := s.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&wallpaper).Error; err != nil {
		return nil, err
	}
	return &wallpaper, nil
}

// ListVideos returns active videos
func (s *MediaService) ListVideos(ctx context.Context) ([]model.Video, error) {
	var videos []model.Video
	if err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&videos).Error; err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return videos, nil
}

// GetVideo returns one active video
func (s *MediaService) GetVideo(ctx context.Context, id string) (*model.Video, error) {
	var video model.Video
	if err := s.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// DownloadURL presigns a time-limited download link for a stored object
func (s *MediaService) DownloadURL(storageKey string) (string, error) {
	req, _ := s.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storageKey),
	})

	url, err := req.Presign(downloadURLExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to presign download url: %w", err)
	}
	return url, nil
}
