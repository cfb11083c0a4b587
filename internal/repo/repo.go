package repo

import (
	"github.com/dmarkov/coindrop/internal/matching"
	"github.com/dmarkov/coindrop/internal/otp"
	"github.com/dmarkov/coindrop/internal/pg"
	donationrepo "github.com/dmarkov/coindrop/internal/repo/donation-repo"
	otprepo "github.com/dmarkov/coindrop/internal/repo/otp-repo"
	pledgerepo "github.com/dmarkov/coindrop/internal/repo/pledge-repo"
	pointsrepo "github.com/dmarkov/coindrop/internal/repo/points-repo"
	userrepo "github.com/dmarkov/coindrop/internal/repo/user-repo"
	"github.com/dmarkov/coindrop/internal/service/authservice"
	"github.com/dmarkov/coindrop/internal/service/donationservice"
	"github.com/dmarkov/coindrop/internal/service/pledgeservice"
	"github.com/dmarkov/coindrop/internal/service/pointsservice"
)

// Repositories exposes each store through the interface its consumer
// declares; several fields share one concrete repository.
type Repositories struct {
	UserRepo       authservice.UserRepo
	MatchRepo      matching.UserRepo
	PledgeRepo     pledgeservice.PledgeRepo
	DonationRepo   pledgeservice.DonationRepo
	DoneeDonations donationservice.Repo
	PointsRepo     pointsservice.Repo
	OTPRepo        authservice.OTPRepo

	CleanupCodeRepo otp.CodeRepo
	CleanupUserRepo otp.UserRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	users := userrepo.New(conn)
	pledges := pledgerepo.New(conn, txManager)
	donations := donationrepo.New(conn)
	points := pointsrepo.New(conn, txManager)
	otpCodes := otprepo.New(conn)

	return &Repositories{
		UserRepo:        users,
		MatchRepo:       users,
		PledgeRepo:      pledges,
		DonationRepo:    donations,
		DoneeDonations:  donations,
		PointsRepo:      points,
		OTPRepo:         otpCodes,
		CleanupCodeRepo: otpCodes,
		CleanupUserRepo: users,
	}
}
