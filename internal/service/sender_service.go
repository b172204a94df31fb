package service

import (
	"fmt"

	"rentaride/internal/db"

	"github.com/sirupsen/logrus"
)

type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

// SendReservationConfirmation notifies the renter by email and SMS once
// the claim succeeded. Both sends are fire-and-forget: a delivery
// failure is logged, never surfaced to the confirm flow.
func (s *SenderService) SendReservationConfirmation(res db.Reservation, code string) {
	if res.Car == nil {
		return
	}
	car := *res.Car
	form := res.Form

	subject := fmt.Sprintf("Your RentaRide reservation is confirmed - Code: %s", code)
	plainTextBody := fmt.Sprintf(
		"Hello %s,\n\nYour reservation is confirmed.\n\n"+
			"Reservation Details:\n"+
			"Confirmation Code: %s\n"+
			"Car: %s %s (%s)\n"+
			"Start Date: %s\n"+
			"Rental Period: %d days\n"+
			"Price Per Day: $%.2f\n\n"+
			"Thank you for choosing RentaRide.",
		form.Name, code, car.Brand, car.CarModel, car.CarType,
		form.StartDate, form.RentalPeriod, car.PricePerDay,
	)
	htmlBody := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your reservation for the <strong>%s %s</strong> is confirmed.</p>"+
			"<p>Confirmation code: <strong>%s</strong><br>Start date: %s<br>Rental period: %d days</p>"+
			"<p>Thank you for choosing RentaRide.</p>",
		form.Name, car.Brand, car.CarModel, code, form.StartDate, form.RentalPeriod,
	)

	go func() {
		if err := SendEmailWithSendGrid(form.Email, form.Name, subject, plainTextBody, htmlBody); err != nil {
			logrus.Warnf("confirmation email for code %s failed: %v", code, err)
		}
	}()

	smsMessage := fmt.Sprintf("RentaRide: your reservation %s for the %s %s is confirmed! Start: %s. Details in your email.",
		code, car.Brand, car.CarModel, form.StartDate)
	go func() {
		if err := SendSMS(form.Phone, smsMessage); err != nil {
			logrus.Warnf("confirmation SMS for code %s failed: %v", code, err)
		}
	}()
}
