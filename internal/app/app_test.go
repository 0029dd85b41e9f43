package app

import (
	"bytes"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gavv/httpexpect/v2"
	"github.com/stretchr/testify/suite"
	"github.com/xw1nchester/foodkart-vendor/internal/config"
	"go.uber.org/zap"
)

type ConsoleTestSuite struct {
	suite.Suite
	api     *fakeAPI
	apiSrv  *httptest.Server
	console *httptest.Server
}

func TestSuite(t *testing.T) {
	suite.Run(t, &ConsoleTestSuite{})
}

func (s *ConsoleTestSuite) SetupSuite() {
	s.api = newFakeAPI()
	s.apiSrv = httptest.NewServer(s.api.Handler())

	cfg := config.Config{
		Env: config.EnvLocal,
		HTTPServer: config.HTTPServer{
			AllowedOrigins: []string{"*"},
		},
		API: config.API{
			BaseURL:       s.apiSrv.URL,
			Timeout:       5 * time.Second,
			MaxUploadSize: 5 << 20,
		},
		Session: config.Session{
			TTL:     7 * 24 * time.Hour,
			HashKey: "console-test-hash-key",
		},
	}

	router, err := NewRouter(zap.NewNop(), cfg)
	s.Require().NoError(err)

	s.console = httptest.NewServer(router)
}

func (s *ConsoleTestSuite) TearDownSuite() {
	s.console.Close()
	s.apiSrv.Close()
}

// browser returns a client with its own cookie jar that does not follow redirects.
func (s *ConsoleTestSuite) browser() *httpexpect.Expect {
	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)

	return httpexpect.WithConfig(httpexpect.Config{
		BaseURL:  s.console.URL,
		Reporter: httpexpect.NewAssertReporter(s.T()),
		Client: &http.Client{
			Jar: jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	})
}

type vendorAccount struct {
	username string
	email    string
	password string
}

func newVendorAccount() vendorAccount {
	return vendorAccount{
		username: gofakeit.Username(),
		email:    gofakeit.Email(),
		password: gofakeit.Password(true, true, true, false, false, 12),
	}
}

func (s *ConsoleTestSuite) signinAndLogin(e *httpexpect.Expect, account vendorAccount) {
	e.POST("/signin").
		WithFormField("username", account.username).
		WithFormField("email", account.email).
		WithFormField("password", account.password).
		Expect().
		Status(http.StatusSeeOther).
		Header("Location").IsEqual("/login")

	e.GET("/login").
		Expect().
		Status(http.StatusOK).
		Body().Contains("Signin Success. Please Login!")

	e.POST("/login").
		WithFormField("email", account.email).
		WithFormField("password", account.password).
		Expect().
		Status(http.StatusSeeOther).
		Header("Location").IsEqual("/")
}

func (s *ConsoleTestSuite) TestPing() {
	s.browser().GET("/ping").
		Expect().
		Status(http.StatusOK).
		Body().IsEqual("pong")
}

func (s *ConsoleTestSuite) TestGuard() {
	e := s.browser()

	for _, path := range []string{"/", "/add-firm", "/add-product", "/products"} {
		e.GET(path).
			Expect().
			Status(http.StatusFound).
			Header("Location").IsEqual("/login")
	}

	e.POST("/firm/delete").
		Expect().
		Status(http.StatusSeeOther).
		Header("Location").IsEqual("/login")
}

func (s *ConsoleTestSuite) TestNotFound() {
	resp := s.browser().GET("/definitely/not/here").Expect()

	resp.Status(http.StatusNotFound)
	resp.Body().Contains("OOPS 404 Page Not Found...!")
	resp.Body().Contains(`href="/login"`)
}

func (s *ConsoleTestSuite) TestWrongMethod() {
	e := s.browser()

	for _, path := range []string{"/logout", "/firm/delete", "/products/p1/delete"} {
		resp := e.GET(path).Expect()

		resp.Status(http.StatusNotFound)
		resp.Body().Contains("OOPS 404 Page Not Found...!")
	}
}

func (s *ConsoleTestSuite) TestStatic() {
	s.browser().GET("/static/console.js").
		Expect().
		Status(http.StatusOK).
		Body().Contains("Processing…")
}

func (s *ConsoleTestSuite) TestLogin_Failures() {
	e := s.browser()

	e.POST("/login").
		WithFormField("email", gofakeit.Email()).
		Expect().
		Status(http.StatusBadRequest).
		Body().Contains("Please fill required fields").NotContains(`class="toast `)

	e.POST("/login").
		WithFormField("email", "nobody@example.com").
		WithFormField("password", "wrong").
		Expect().
		Status(http.StatusUnauthorized).
		Body().Contains("Invalid username or password").Contains("toast-error")

	e.GET("/").
		Expect().
		Status(http.StatusFound).
		Header("Location").IsEqual("/login")
}

func (s *ConsoleTestSuite) TestSignin_DuplicateEmail() {
	account := newVendorAccount()
	e := s.browser()

	s.signinAndLogin(e, account)

	s.browser().POST("/signin").
		WithFormField("username", gofakeit.Username()).
		WithFormField("email", account.email).
		WithFormField("password", "another").
		Expect().
		Status(http.StatusBadRequest).
		Body().Contains("Email already taken")
}

func (s *ConsoleTestSuite) TestVendorJourney() {
	account := newVendorAccount()
	e := s.browser()

	s.signinAndLogin(e, account)

	// signed-in vendors skip the login screen
	e.GET("/login").
		Expect().
		Status(http.StatusFound).
		Header("Location").IsEqual("/")

	home := e.GET("/").Expect().Status(http.StatusOK).Body()
	home.Contains("Login Successful")
	home.Contains("Add Your Firm/Restaurant Here")
	home.Contains(account.username)
	home.Contains(`action="/logout"`)

	e.GET("/products").
		Expect().
		Status(http.StatusFound).
		Header("Location").IsEqual("/")
	e.GET("/").Expect().Body().Contains("Please add your firm first!")

	firmName := "Firm " + gofakeit.LetterN(8)

	e.POST("/add-firm").
		WithMultipart().
		WithFormField("firmName", firmName).
		WithFormField("area", gofakeit.Street()).
		WithFormField("region", "bakery").
		WithFile("image", "firm.png", bytes.NewReader([]byte("png"))).
		Expect().
		Status(http.StatusBadRequest).
		Body().Contains("Please fill required fields").Contains(`value="bakery" checked`)

	e.POST("/add-firm").
		WithMultipart().
		WithFormField("firmName", firmName).
		WithFormField("area", gofakeit.Street()).
		WithFormField("category", "veg").
		WithFormField("category", "non-veg").
		WithFormField("region", "south-indian").
		WithFormField("region", "bakery").
		WithFile("image", "firm.png", bytes.NewReader([]byte("png"))).
		Expect().
		Status(http.StatusSeeOther).
		Header("Location").IsEqual("/")

	home = e.GET("/").Expect().Status(http.StatusOK).Body()
	home.Contains("Firm added successfully")
	home.Contains(firmName)
	home.Contains("veg &amp; non-veg")
	home.Contains("south-indian, bakery")

	e.GET("/add-firm").
		Expect().
		Status(http.StatusFound).
		Header("Location").IsEqual("/")
	e.GET("/").Expect().Body().Contains("You already have firm!")

	productName := gofakeit.Dessert()
	price := strconv.Itoa(gofakeit.Number(50, 500))

	e.POST("/add-product").
		WithMultipart().
		WithFormField("productName", productName).
		WithFormField("price", price).
		WithFormField("bestSeller", "true").
		WithFile("image", "dish.jpg", bytes.NewReader([]byte("jpg"))).
		Expect().
		Status(http.StatusSeeOther).
		Header("Location").IsEqual("/")

	products := e.GET("/products").Expect().Status(http.StatusOK).Body()
	products.Contains("Welcome to")
	products.Contains(firmName)
	products.Contains("Rs." + price)
	products.Contains("Best Seller")
	products.Contains("No description available")

	ids := s.api.productIDs()
	s.Require().NotEmpty(ids)

	e.POST("/products/" + ids[len(ids)-1] + "/delete").
		Expect().
		Status(http.StatusSeeOther).
		Header("Location").IsEqual("/products")

	products = e.GET("/products").Expect().Status(http.StatusOK).Body()
	products.Contains("Product deleted successfully")
	products.NotContains("Rs." + price)

	e.GET("/").
		WithQuery("confirm", "delete-firm").
		Expect().
		Status(http.StatusOK).
		Body().Contains("Are you sure you want to delete this firm?")

	e.POST("/firm/delete").
		Expect().
		Status(http.StatusSeeOther).
		Header("Location").IsEqual("/")

	home = e.GET("/").Expect().Status(http.StatusOK).Body()
	home.Contains("Firm deleted successfully")
	home.Contains("Add Your Firm/Restaurant Here")

	e.POST("/logout").
		Expect().
		Status(http.StatusSeeOther).
		Header("Location").IsEqual("/login")

	e.GET("/login").Expect().Status(http.StatusOK).Body().Contains("Logout Successful!")

	e.GET("/").
		Expect().
		Status(http.StatusFound).
		Header("Location").IsEqual("/login")
}

func (s *ConsoleTestSuite) TestTamperedSession() {
	e := s.browser()

	e.GET("/").
		WithCookie("token", "forged").
		Expect().
		Status(http.StatusFound).
		Header("Location").IsEqual("/login")
}
