package service

import (
	"github.com/dmarkov/coindrop/internal/config"
	"github.com/dmarkov/coindrop/internal/handlers/auth"
	"github.com/dmarkov/coindrop/internal/handlers/donations"
	"github.com/dmarkov/coindrop/internal/handlers/pledges"
	"github.com/dmarkov/coindrop/internal/handlers/points"
	"github.com/dmarkov/coindrop/internal/matching"
	"github.com/dmarkov/coindrop/internal/pg"

	pkgauth "github.com/dmarkov/coindrop/pkg/auth"

	"github.com/dmarkov/coindrop/internal/repo"
	"github.com/dmarkov/coindrop/internal/service/authservice"
	"github.com/dmarkov/coindrop/internal/service/donationservice"
	"github.com/dmarkov/coindrop/internal/service/pledgeservice"
	"github.com/dmarkov/coindrop/internal/service/pointsservice"
)

type Services struct {
	AuthService     auth.Service
	PledgeService   pledges.Service
	PointsService   points.Service
	DonationService donations.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, notifier authservice.Notifier) *Services {
	matcher := matching.NewOldestDonee(repo.MatchRepo)
	pointsService := pointsservice.New(repo.PointsRepo)
	pledgeService := pledgeservice.New(repo.PledgeRepo, repo.DonationRepo, repo.PointsRepo, matcher, txManager)
	donationService := donationservice.New(repo.DoneeDonations)
	authService := authservice.New(repo.UserRepo, repo.OTPRepo, notifier, &pkgauth.HashService{}, &pkgauth.JWTService{}, cfg.OTPTTL)

	return &Services{
		AuthService:     authService,
		PledgeService:   pledgeService,
		PointsService:   pointsService,
		DonationService: donationService,
	}
}
