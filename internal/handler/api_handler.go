package handler

import (
	"standup-report-service/api"
	"standup-report-service/internal/domain"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*UserHandler
	*TeamHandler
	*ReportHandler
	*StatsHandler
}

func NewAPIHandler(
	userUseCase domain.UserUseCase,
	teamUseCase domain.TeamUseCase,
	reportUseCase domain.ReportUseCase,
	statsUseCase domain.StatsUseCase,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		UserHandler:   NewUserHandler(userUseCase, logger),
		TeamHandler:   NewTeamHandler(teamUseCase, logger),
		ReportHandler: NewReportHandler(reportUseCase, logger),
		StatsHandler:  NewStatsHandler(statsUseCase, logger),
	}
}
