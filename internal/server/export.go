package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	v1 "github.com/inkspect/docverify/gen/proto/docverify/v1"
	"github.com/inkspect/docverify/internal/common"
	"github.com/inkspect/docverify/internal/export"
	"github.com/inkspect/docverify/internal/utils"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

// ExportVerifications renders the verification outcomes inside the requested
// window as an XLSX workbook. Bounds are YYYY-MM-DD and inclusive; the export
// service normalizes open bounds (only from -> from..today, only to ->
// beginning..to, none -> all).
func (s *ExportServer) ExportVerifications(ctx context.Context, req *v1.ExportVerificationsRequest) (*v1.ExportVerificationsResponse, error) {
	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	xlsx, err := s.svc.ExportVerificationsXLSX(ctx, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, common.InternalError(err.Error())
	}

	return &v1.ExportVerificationsResponse{Xlsx: xlsx}, nil
}
