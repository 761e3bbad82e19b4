package router

import (
	"net/http"
	"strings"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/auth"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/handler"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers bundles the per-resource HTTP handlers for route registration.
type Handlers struct {
	Auth    *handler.AuthHandler
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
	Design  *handler.DesignHandler
	Theme   *handler.ThemeHandler
	Content *handler.ContentHandler
	Admin   *handler.AdminHandler
	Upload  *handler.UploadHandler
	Payment *handler.PaymentHandler
}

// New creates a new HTTP router with all routes and middleware configured.
// userTokens guards customer routes; adminTokens guards the /api/admin/
// namespace (admin login excepted).
func New(
	h Handlers,
	userTokens *auth.TokenIssuer,
	adminTokens *auth.TokenIssuer,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	userAuth := middleware.BearerAuth(userTokens, logger)
	adminAuth := middleware.BearerAuth(adminTokens, logger)

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Public auth routes; profile requires a token
	mux.HandleFunc("/api/auth/register", h.Auth.Register)
	mux.HandleFunc("/api/auth/login", h.Auth.Login)
	mux.Handle("/api/auth/profile", userAuth(http.HandlerFunc(h.Auth.Profile)))

	// Public catalogue routes
	productRoutes := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			h.Product.GetByID(w, r)
			return
		}
		h.Product.GetAll(w, r)
	}
	mux.HandleFunc("/api/products", productRoutes)
	mux.HandleFunc("/api/products/", productRoutes)

	themeRoutes := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/themes" && r.URL.Path != "/api/themes/" {
			h.Theme.GetByID(w, r)
			return
		}
		h.Theme.GetAll(w, r)
	}
	mux.HandleFunc("/api/themes", themeRoutes)
	mux.HandleFunc("/api/themes/", themeRoutes)

	// Customer routes
	mux.Handle("/api/cart", userAuth(http.HandlerFunc(h.Cart.Handle)))

	orderRoutes := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && (r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/") {
			h.Order.Create(w, r)
			return
		}
		if r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/" {
			h.Order.List(w, r)
			return
		}
		if strings.HasPrefix(r.URL.Path, "/api/orders/") {
			h.Order.GetByID(w, r)
			return
		}
		http.Error(w, "not found", http.StatusNotFound)
	}
	mux.Handle("/api/orders", userAuth(http.HandlerFunc(orderRoutes)))
	mux.Handle("/api/orders/", userAuth(http.HandlerFunc(orderRoutes)))

	mux.Handle("/api/design-orders", userAuth(http.HandlerFunc(h.Design.Handle)))
	mux.Handle("/api/content/", userAuth(http.HandlerFunc(h.Content.Handle)))
	mux.Handle("/api/upload", userAuth(http.HandlerFunc(h.Upload.Upload)))
	mux.Handle("/api/payment/token", userAuth(http.HandlerFunc(h.Payment.Token)))

	// Admin namespace; login is the only unauthenticated admin route
	mux.HandleFunc("/api/admin/login", h.Admin.Login)
	mux.Handle("/api/admin/stats", adminAuth(http.HandlerFunc(h.Admin.Stats)))

	adminUserRoutes := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/admin/users" || r.URL.Path == "/api/admin/users/" {
			h.Admin.ListUsers(w, r)
			return
		}
		h.Admin.DeleteUser(w, r)
	}
	mux.Handle("/api/admin/users", adminAuth(http.HandlerFunc(adminUserRoutes)))
	mux.Handle("/api/admin/users/", adminAuth(http.HandlerFunc(adminUserRoutes)))

	adminProductRoutes := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/admin/products" || r.URL.Path == "/api/admin/products/" {
			if r.Method != http.MethodPost {
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
				return
			}
			h.Product.Create(w, r)
			return
		}
		switch r.Method {
		case http.MethodPut:
			h.Product.Update(w, r)
		case http.MethodDelete:
			h.Product.Delete(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
	mux.Handle("/api/admin/products", adminAuth(http.HandlerFunc(adminProductRoutes)))
	mux.Handle("/api/admin/products/", adminAuth(http.HandlerFunc(adminProductRoutes)))

	adminOrderRoutes := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/admin/orders" || r.URL.Path == "/api/admin/orders/" {
			h.Order.ListAll(w, r)
			return
		}
		switch r.Method {
		case http.MethodGet:
			h.Order.AdminGetByID(w, r)
		case http.MethodPut:
			h.Order.UpdateStatus(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
	mux.Handle("/api/admin/orders", adminAuth(http.HandlerFunc(adminOrderRoutes)))
	mux.Handle("/api/admin/orders/", adminAuth(http.HandlerFunc(adminOrderRoutes)))

	adminDesignRoutes := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/admin/design-orders" || r.URL.Path == "/api/admin/design-orders/" {
			h.Design.ListAll(w, r)
			return
		}
		if r.Method == http.MethodPut {
			h.Design.AdminUpdate(w, r)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
	mux.Handle("/api/admin/design-orders", adminAuth(http.HandlerFunc(adminDesignRoutes)))
	mux.Handle("/api/admin/design-orders/", adminAuth(http.HandlerFunc(adminDesignRoutes)))

	adminThemeRoutes := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/admin/themes" || r.URL.Path == "/api/admin/themes/" {
			if r.Method != http.MethodPost {
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
				return
			}
			h.Theme.Create(w, r)
			return
		}
		switch r.Method {
		case http.MethodPut:
			h.Theme.Update(w, r)
		case http.MethodDelete:
			h.Theme.Delete(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
	mux.Handle("/api/admin/themes", adminAuth(http.HandlerFunc(adminThemeRoutes)))
	mux.Handle("/api/admin/themes/", adminAuth(http.HandlerFunc(adminThemeRoutes)))

	// Apply middleware in order: Recovery -> Logging -> CORS
	var root http.Handler = mux
	root = middleware.CORS(root)
	root = middleware.Logging(logger)(root)
	root = middleware.Recovery(logger)(root)

	return root
}
