package storage

import (
	"ecare-automation/internal/app/config"
	"fmt"
	"log"
	"net"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// NewMinio builds the report store client. minio.New does not contact the
// server, so bucket checks happen on first upload.
func NewMinio(driverConfig *config.DriverConfig) (*minio.Client, error) {
	minioConfig := driverConfig.Minio
	client, err := minio.New(net.JoinHostPort(minioConfig.Host, minioConfig.Port), &minio.Options{
		Creds:  credentials.NewStaticV4(minioConfig.Username, minioConfig.Password, ""),
		Secure: minioConfig.UseSSL,
		Region: minioConfig.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize minio client: %w", err)
	}

	log.Printf("Initialized minio client for %s, reports bucket %s", client.EndpointURL().Host, minioConfig.BucketName)
	return client, nil
}
