package converter

import (
	dto "bowling_backend/internal/api/dto/auth"
	"bowling_backend/internal/model"
)

func RegisterRequestToBowlerModel(req *dto.RegisterRequest) *model.Bowler {
	return &model.Bowler{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
	}
}

func LoginRequestToBowlerModel(req *dto.LoginRequest) *model.Bowler {
	return &model.Bowler{
		Login:    req.Login,
		Password: req.Password,
	}
}
