package cli

import (
	"fmt"
	"strconv"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/exceptions"
	"superadmin-service/internal/pkg/utils"

	"github.com/spf13/cobra"
)

func newBookingsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Review and moderate bookings",
	}
	cmd.AddCommand(
		newBookingsListCommand(app),
		newBookingsStatusCommand(app),
		newBookingsCancelCommand(app),
	)
	return cmd
}

func newBookingsListCommand(app *App) *cobra.Command {
	request := requests.ListBookings{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.ValidateStruct(request); err != nil {
				return exceptions.ErrInputValidation(err)
			}
			ctx, client, err := app.session(cmd.Context())
			if err != nil {
				return err
			}

			list, err := client.ListBookings(ctx, request)
			if err != nil {
				return err
			}
			if len(list.Bookings) == 0 {
				app.printf("%s\n", mutedStyle.Render("No bookings found"))
				return nil
			}

			rows := make([][]string, 0, len(list.Bookings))
			for _, booking := range list.Bookings {
				rows = append(rows, []string{
					booking.ID,
					booking.BookingID,
					booking.User.Name,
					booking.ServiceType,
					booking.SlotDateTime,
					booking.Status,
					strconv.FormatFloat(booking.Amount, 'f', 2, 64),
				})
			}
			app.printf("%s", renderTable([]string{"ID", "BOOKING", "USER", "SERVICE", "SLOT", "STATUS", "AMOUNT"}, rows))
			app.printf("%s\n", mutedStyle.Render(fmt.Sprintf("page %d of %d", list.Pagination.CurrentPage, list.Pagination.TotalPages)))
			return nil
		},
	}
	cmd.Flags().IntVar(&request.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&request.Limit, "limit", 10, "bookings per page")
	cmd.Flags().StringVar(&request.Search, "search", "", "search by booking id or user")
	cmd.Flags().StringVar(&request.Status, "status", "", "pending, confirmed, completed or cancelled")
	cmd.Flags().StringVar(&request.ServiceType, "service-type", "", "filter by service type")
	cmd.Flags().StringVar(&request.DateFrom, "from", "", "earliest slot date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&request.DateTo, "to", "", "latest slot date (YYYY-MM-DD)")
	return cmd
}

func newBookingsStatusCommand(app *App) *cobra.Command {
	request := requests.UpdateBookingStatus{}
	cmd := &cobra.Command{
		Use:   "status <id>",
		Short: "Change the status of a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.ValidateUrlParamID(args[0]); err != nil {
				return err
			}
			utils.SanitizeUpdateBookingStatusRequest(&request)
			if err := utils.ValidateStruct(request); err != nil {
				return exceptions.ErrInputValidation(err)
			}
			ctx, client, err := app.session(cmd.Context())
			if err != nil {
				return err
			}
			booking, err := client.UpdateBookingStatus(ctx, args[0], request)
			if err != nil {
				return err
			}
			app.success(fmt.Sprintf("Booking %s is now %s", booking.BookingID, booking.Status))
			return nil
		},
	}
	cmd.Flags().StringVar(&request.Status, "status", "", "new booking status")
	cmd.Flags().StringVar(&request.Reason, "reason", "", "note sent with the change")
	cmd.MarkFlagRequired("status")
	return cmd
}

func newBookingsCancelCommand(app *App) *cobra.Command {
	request := requests.CancelBooking{}
	cmd := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.ValidateUrlParamID(args[0]); err != nil {
				return err
			}
			utils.SanitizeCancelBookingRequest(&request)
			if err := utils.ValidateStruct(request); err != nil {
				return exceptions.ErrInputValidation(err)
			}
			ctx, client, err := app.session(cmd.Context())
			if err != nil {
				return err
			}
			booking, err := client.CancelBooking(ctx, args[0], request)
			if err != nil {
				return err
			}
			app.success(fmt.Sprintf("Booking %s cancelled", booking.BookingID))
			return nil
		},
	}
	cmd.Flags().StringVar(&request.Reason, "reason", "", "cancellation reason")
	return cmd
}
