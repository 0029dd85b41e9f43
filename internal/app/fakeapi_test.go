package app

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type fakeVendor struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	password string
	firmID   string
}

type fakeFirm struct {
	ID       string   `json:"_id"`
	FirmName string   `json:"firmName"`
	Area     string   `json:"area"`
	Category []string `json:"category"`
	Region   []string `json:"region"`
	Offer    string   `json:"offer"`
	Image    string   `json:"image"`
	vendorID string
}

type fakeProduct struct {
	ID          string `json:"_id"`
	ProductName string `json:"productName"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	BestSeller  string `json:"bestSeller"`
	Description string `json:"description"`
	Image       string `json:"image"`
	firmID      string
}

// fakeAPI is an in-memory stand-in for the FoodKart API.
type fakeAPI struct {
	mu       sync.Mutex
	vendors  map[string]*fakeVendor
	tokens   map[string]string
	firms    map[string]*fakeFirm
	products map[string]*fakeProduct
	order    []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		vendors:  make(map[string]*fakeVendor),
		tokens:   make(map[string]string),
		firms:    make(map[string]*fakeFirm),
		products: make(map[string]*fakeProduct),
	}
}

func (f *fakeAPI) Handler() http.Handler {
	r := chi.NewRouter()

	r.Post("/vendor/register", f.register)
	r.Post("/vendor/login", f.login)

	r.Group(func(r chi.Router) {
		r.Use(f.verifyToken)

		r.Get("/vendor/single-vendor/{id}", f.singleVendor)
		r.Post("/firm/add-firm", f.addFirm)
		r.Delete("/firm/{id}", f.deleteFirm)
		r.Post("/product/add-product/{firmId}", f.addProduct)
		r.Get("/product/{id}/products", f.listProducts)
		r.Delete("/product/{id}", f.deleteProduct)
	})

	return r
}

func (f *fakeAPI) verifyToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		vendorID, ok := f.tokens[r.Header.Get("token")]
		f.mu.Unlock()

		if !ok {
			reply(w, http.StatusUnauthorized, map[string]string{"message": "Invalid token"})
			return
		}

		r.Header.Set("X-Vendor-ID", vendorID)
		next.ServeHTTP(w, r)
	})
}

func reply(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeAPI) register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		reply(w, http.StatusBadRequest, map[string]string{"message": "Invalid body"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, v := range f.vendors {
		if v.Email == body.Email {
			reply(w, http.StatusBadRequest, map[string]string{"message": "Email already taken"})
			return
		}
	}

	id := uuid.NewString()
	f.vendors[id] = &fakeVendor{ID: id, Username: body.Username, Email: body.Email, password: body.Password}

	reply(w, http.StatusCreated, map[string]string{"message": "Vendor registered successfully"})
}

func (f *fakeAPI) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		reply(w, http.StatusBadRequest, map[string]string{"message": "Invalid body"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, v := range f.vendors {
		if v.Email == body.Email && v.password == body.Password {
			token := uuid.NewString()
			f.tokens[token] = v.ID
			reply(w, http.StatusOK, map[string]string{"message": "Login successful", "token": token, "id": v.ID})
			return
		}
	}

	reply(w, http.StatusUnauthorized, map[string]string{"message": "Invalid username or password"})
}

func (f *fakeAPI) singleVendor(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.vendors[chi.URLParam(r, "id")]
	if !ok {
		reply(w, http.StatusNotFound, map[string]string{"message": "Vendor not found"})
		return
	}

	firms := []*fakeFirm{}
	if firm, ok := f.firms[v.firmID]; ok {
		firms = append(firms, firm)
	}

	reply(w, http.StatusOK, map[string]any{
		"vendor": map[string]any{
			"_id":      v.ID,
			"username": v.Username,
			"email":    v.Email,
			"firm":     firms,
		},
	})
}

func (f *fakeAPI) addFirm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		reply(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	if _, _, err := r.FormFile("image"); err != nil {
		reply(w, http.StatusBadRequest, map[string]string{"message": "Image is required"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	v := f.vendors[r.Header.Get("X-Vendor-ID")]
	if v.firmID != "" {
		reply(w, http.StatusBadRequest, map[string]string{"message": "Vendor can have only one firm"})
		return
	}

	firm := &fakeFirm{
		ID:       uuid.NewString(),
		FirmName: r.FormValue("firmName"),
		Area:     r.FormValue("area"),
		Category: r.MultipartForm.Value["category"],
		Region:   r.MultipartForm.Value["region"],
		Offer:    r.FormValue("offer"),
		Image:    "https://cdn.example/firm.png",
		vendorID: v.ID,
	}
	f.firms[firm.ID] = firm
	v.firmID = firm.ID

	reply(w, http.StatusOK, map[string]string{"message": "Firm added successfully", "firmId": firm.ID})
}

func (f *fakeAPI) deleteFirm(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	firm, ok := f.firms[chi.URLParam(r, "id")]
	if !ok {
		reply(w, http.StatusNotFound, map[string]string{"message": "Firm not found"})
		return
	}

	delete(f.firms, firm.ID)
	f.vendors[firm.vendorID].firmID = ""
	for id, p := range f.products {
		if p.firmID == firm.ID {
			delete(f.products, id)
		}
	}

	reply(w, http.StatusOK, map[string]string{"message": "Firm deleted successfully"})
}

func (f *fakeAPI) addProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		reply(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	firmID := chi.URLParam(r, "firmId")
	if _, ok := f.firms[firmID]; !ok {
		reply(w, http.StatusNotFound, map[string]string{"message": "No firm found"})
		return
	}

	p := &fakeProduct{
		ID:          uuid.NewString(),
		ProductName: r.FormValue("productName"),
		Price:       r.FormValue("price"),
		Category:    r.FormValue("category"),
		BestSeller:  r.FormValue("bestSeller"),
		Description: r.FormValue("description"),
		Image:       "https://cdn.example/product.png",
		firmID:      firmID,
	}
	f.products[p.ID] = p
	f.order = append(f.order, p.ID)

	reply(w, http.StatusOK, map[string]string{"message": "Product added successfully"})
}

func (f *fakeAPI) listProducts(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	firm, ok := f.firms[chi.URLParam(r, "id")]
	if !ok {
		reply(w, http.StatusNotFound, map[string]string{"message": "No firm found"})
		return
	}

	products := []*fakeProduct{}
	for _, id := range f.order {
		if p, ok := f.products[id]; ok && p.firmID == firm.ID {
			products = append(products, p)
		}
	}

	reply(w, http.StatusOK, map[string]any{"restaurantName": firm.FirmName, "products": products})
}

func (f *fakeAPI) deleteProduct(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := chi.URLParam(r, "id")
	if _, ok := f.products[id]; !ok {
		reply(w, http.StatusNotFound, map[string]string{"message": "No product found"})
		return
	}

	delete(f.products, id)

	reply(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

func (f *fakeAPI) productIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var ids []string
	for _, id := range f.order {
		if _, ok := f.products[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
