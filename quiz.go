package grammarquiz

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/nsip/grammar-quiz/internal/grading"
	"github.com/nsip/grammar-quiz/internal/notify"
	"github.com/nsip/grammar-quiz/internal/util"
)

//
// receives the formatted result summary for
// each graded quiz
//
type Notifier interface {
	Notify(text string) error
}

type QuizService struct {
	// embedded web server to handle quiz submissions
	e *echo.Echo
	// the unique name of this service when running multiple instances
	serviceName string
	// the unique id of this service when running multiple instances
	serviceID string
	// the host address this service instance is running on
	serviceHost string
	// the port that this service instance is running on
	servicePort int
	// telegram bot token for result summaries
	notifyBotToken string
	// telegram chat that receives result summaries
	notifyChatID string
	// bot api url template, blank for the public api
	notifyEndpoint string
	// where summaries are delivered, nil when delivery is not configured
	notifier Notifier
}

//
// json reply for any request that could not be graded
//
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

//
// json reply for a graded quiz
//
type submitResponse struct {
	Success bool                     `json:"success"`
	Score   int                      `json:"score"`
	Total   int                      `json:"total"`
	Results []grading.QuestionResult `json:"results"`
}

//
// create a new service instance
//
func New(options ...Option) (*QuizService, error) {

	srvc := QuizService{}

	if err := srvc.setOptions(options...); err != nil {
		return nil, err
	}

	if srvc.notifier == nil && srvc.notifyBotToken != "" && srvc.notifyChatID != "" {
		srvc.notifier = notify.NewTelegram(srvc.notifyEndpoint, srvc.notifyBotToken, srvc.notifyChatID)
	}

	srvc.e = echo.New()
	srvc.e.HideBanner = true
	srvc.e.Logger.SetLevel(log.INFO)
	srvc.e.HTTPErrorHandler = errorHandler
	srvc.e.Use(middleware.Recover())
	// add pingable method to know we're up
	srvc.e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, "OK")
	})
	// any method is routed to the handler so that it
	// can answer with its own 405
	srvc.e.Any("/api/submit", srvc.buildSubmitHandler())

	return &srvc, nil
}

//
// start the service running
//
func (s *QuizService) Start() {

	address := fmt.Sprintf("%s:%d", s.serviceHost, s.servicePort)
	go func(addr string) {
		if err := s.e.Start(addr); err != nil {
			s.e.Logger.Info("error starting server: ", err, ", shutting down...")
			// attempt clean shutdown by raising sig int
			p, _ := os.FindProcess(os.Getpid())
			p.Signal(os.Interrupt)
		}
	}(address)

}

//
// creates the quiz submission handler.
// expects a json body of
// name: student name
// group: student's class/group
// answers: object of "q1".."q30" -> answer text
//
// replies with the score and per-question results; the
// summary sent to telegram never affects the reply.
//
func (s *QuizService) buildSubmitHandler() echo.HandlerFunc {

	key := grading.Key()

	return func(c echo.Context) error {

		if c.Request().Method != http.MethodPost {
			return c.JSON(http.StatusMethodNotAllowed, errorResponse{Message: "Only POST allowed"})
		}

		body, err := ioutil.ReadAll(c.Request().Body)
		if err != nil {
			return err
		}

		sub, err := parseSubmission(body)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
		}

		start := time.Now()
		report := grading.Grade(sub.Answers, key, grading.QuestionCount)
		util.TimeTrack(start, "grading "+sub.Name)

		s.sendSummary(c.Logger(), notify.FormatReport(sub.Name, sub.Group, report))

		return c.JSON(http.StatusOK, submitResponse{
			Success: true,
			Score:   report.Score,
			Total:   report.Total,
			Results: report.Results,
		})
	}
}

//
// best-effort delivery of the result summary.
// failures are logged and dropped, the student's
// result does not depend on them.
//
func (s *QuizService) sendSummary(logger echo.Logger, text string) {
	if s.notifier == nil {
		logger.Warn("NOTIFY_BOT_TOKEN or NOTIFY_CHAT_ID not set, result summary not sent")
		return
	}
	if err := s.notifier.Notify(text); err != nil {
		logger.Errorf("error sending result summary: %v", err)
	}
}

//
// replaces echo's default error handler so every failure
// reaches the client in the same {success, message} shape.
// anything that is not a plain http error (including recovered
// panics) is reported as a generic server error.
//
func errorHandler(err error, c echo.Context) {

	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "Server error"
	if he, ok := err.(*echo.HTTPError); ok && he.Code != http.StatusInternalServerError {
		code = he.Code
		msg = http.StatusText(code)
	} else {
		c.Logger().Error("handler error: ", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, errorResponse{Message: msg})
	}
	if err != nil {
		c.Logger().Error(err)
	}
}

//
// shut the server down gracefully
//
func (s *QuizService) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.e.Shutdown(ctx); err != nil {
		fmt.Println("could not shut down server cleanly: ", err)
		s.e.Logger.Fatal(err)
	}

}

func (s *QuizService) PrintConfig() {

	fmt.Println("\n\tGrammar Quiz Service Configuration")
	fmt.Println("\t----------------------------------")

	s.printID()
	s.printNotifyConfig()

}

func (s *QuizService) printID() {
	fmt.Println("\tservice name:\t\t", s.serviceName)
	fmt.Println("\tservice ID:\t\t", s.serviceID)
	fmt.Println("\tservice host:\t\t", s.serviceHost)
	fmt.Println("\tservice port:\t\t", s.servicePort)
}

func (s *QuizService) printNotifyConfig() {
	if s.notifyBotToken == "" || s.notifyChatID == "" {
		fmt.Println("\ttelegram:\t\t disabled")
		return
	}
	// display only a partial token
	tokenParts := strings.Split(s.notifyBotToken, ":")
	fmt.Println("\ttelegram bot:\t\t", tokenParts[0])
	fmt.Println("\ttelegram chat:\t\t", s.notifyChatID)
}
