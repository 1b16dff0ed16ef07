package superadmin_api

import (
	"context"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func (c *Client) ListUsers(ctx context.Context, request requests.ListUsers) (json.RawMessage, error) {
	c.Log.Info("superadminClient.ListUsers called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)

	query := utils.NewQueryBuilder().
		Int(constvars.QueryParamPage, request.Page).
		Int(constvars.QueryParamLimit, request.Limit).
		String(constvars.QueryParamSearch, request.Search).
		String(constvars.QueryParamStatus, request.Status).
		Values()
	return c.getData(ctx, constvars.SuperadminPathUsers, query)
}

func (c *Client) SearchUsers(ctx context.Context, request requests.SearchUsers) (json.RawMessage, error) {
	c.Log.Info("superadminClient.SearchUsers called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)

	query := utils.NewQueryBuilder().
		Int(constvars.QueryParamPage, request.Page).
		Int(constvars.QueryParamLimit, request.Limit).
		String(constvars.QueryParamSearch, request.Search).
		String(constvars.QueryParamStatus, request.Status).
		String(constvars.QueryParamEmailVerified, request.EmailVerified).
		String(constvars.QueryParamDateFrom, request.DateFrom).
		String(constvars.QueryParamDateTo, request.DateTo).
		Values()
	return c.getData(ctx, constvars.SuperadminPathUsers+constvars.SuperadminSegmentSearch, query)
}

func (c *Client) GetUserStats(ctx context.Context) (json.RawMessage, error) {
	c.Log.Info("superadminClient.GetUserStats called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return c.getData(ctx, constvars.SuperadminPathUsers+constvars.SuperadminSegmentStats, nil)
}

func (c *Client) GetUser(ctx context.Context, id string) (json.RawMessage, error) {
	c.Log.Info("superadminClient.GetUser called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)
	return c.getData(ctx, recordPath(constvars.SuperadminPathUsers, id), nil)
}

func (c *Client) ToggleUserStatus(ctx context.Context, id string) (json.RawMessage, error) {
	c.Log.Info("superadminClient.ToggleUserStatus called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)
	return c.sendData(ctx, constvars.MethodPatch, recordPath(constvars.SuperadminPathUsers, id, constvars.SuperadminSegmentToggleStatus), nil, nil)
}

func (c *Client) ListDoctors(ctx context.Context, request requests.ListDoctors) (json.RawMessage, error) {
	c.Log.Info("superadminClient.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)

	query := utils.NewQueryBuilder().
		Int(constvars.QueryParamPage, request.Page).
		Int(constvars.QueryParamLimit, request.Limit).
		String(constvars.QueryParamSearch, request.Search).
		String(constvars.QueryParamStatus, request.Status).
		String(constvars.QueryParamSpecialization, request.Specialization).
		Values()
	return c.getData(ctx, constvars.SuperadminPathDoctors, query)
}

func (c *Client) SearchDoctors(ctx context.Context, request requests.SearchDoctors) (json.RawMessage, error) {
	c.Log.Info("superadminClient.SearchDoctors called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)

	query := utils.NewQueryBuilder().
		Int(constvars.QueryParamPage, request.Page).
		Int(constvars.QueryParamLimit, request.Limit).
		String(constvars.QueryParamSearch, request.Search).
		String(constvars.QueryParamStatus, request.Status).
		String(constvars.QueryParamEmailVerified, request.EmailVerified).
		String(constvars.QueryParamSpecialization, request.Specialization).
		OptionalInt(constvars.QueryParamExperienceMin, request.ExperienceMin).
		OptionalInt(constvars.QueryParamExperienceMax, request.ExperienceMax).
		String(constvars.QueryParamDateFrom, request.DateFrom).
		String(constvars.QueryParamDateTo, request.DateTo).
		Values()
	return c.getData(ctx, constvars.SuperadminPathDoctors+constvars.SuperadminSegmentSearch, query)
}

func (c *Client) GetDoctorStats(ctx context.Context) (json.RawMessage, error) {
	c.Log.Info("superadminClient.GetDoctorStats called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return c.getData(ctx, constvars.SuperadminPathDoctors+constvars.SuperadminSegmentStats, nil)
}

func (c *Client) GetDoctorSpecializations(ctx context.Context) (json.RawMessage, error) {
	c.Log.Info("superadminClient.GetDoctorSpecializations called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return c.getData(ctx, constvars.SuperadminPathDoctors+constvars.SuperadminSegmentSpecializations, nil)
}

func (c *Client) GetDoctor(ctx context.Context, id string) (json.RawMessage, error) {
	c.Log.Info("superadminClient.GetDoctor called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)
	return c.getData(ctx, recordPath(constvars.SuperadminPathDoctors, id), nil)
}

func (c *Client) ToggleDoctorStatus(ctx context.Context, id string) (json.RawMessage, error) {
	c.Log.Info("superadminClient.ToggleDoctorStatus called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)
	return c.sendData(ctx, constvars.MethodPatch, recordPath(constvars.SuperadminPathDoctors, id, constvars.SuperadminSegmentToggleStatus), nil, nil)
}
