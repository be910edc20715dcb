// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/davidkar/customer-records-backend/internal/controller"
	"github.com/davidkar/customer-records-backend/internal/db"
	"github.com/davidkar/customer-records-backend/internal/queue"
	"github.com/davidkar/customer-records-backend/internal/repository"
	"github.com/davidkar/customer-records-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init DB
	conn := db.Connect()
	if err := db.EnsureSchema(conn); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	// Events go to RabbitMQ when configured, otherwise in-process.
	var q queue.Queue
	if amqpURL := os.Getenv("AMQP_URL"); amqpURL != "" {
		rq, err := queue.NewRabbitQueue(amqpURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer rq.Close()
		q = rq
	} else {
		mq := queue.NewInMemoryQueue()
		queue.StartCustomerEventsSubscriber(mq)
		q = mq
	}

	customerRepo := &repository.CustomerRepository{DB: conn}
	addressRepo := &repository.AddressRepository{DB: conn}

	customerService := &service.CustomerService{
		CustomerRepo: customerRepo,
		Queue:        q,
	}
	addressService := &service.AddressService{
		AddressRepo: addressRepo,
	}

	customerController := &controller.CustomerController{
		CustomerService: customerService,
	}
	addressController := &controller.AddressController{
		AddressService: addressService,
	}

	r := chi.NewRouter()

	// Customer routes
	r.Post("/api/customers", customerController.CreateCustomer)
	r.Get("/api/customers", customerController.ListCustomers)
	r.Get("/api/customers/{id}", customerController.GetCustomer)
	r.Get("/api/customers/{id}/with-address-count", customerController.GetCustomerWithAddressCount)
	r.Put("/api/customers/{id}", customerController.UpdateCustomer)
	r.Delete("/api/customers/{id}", customerController.DeleteCustomer)

	// Address routes
	r.Get("/api/customers/{id}/addresses", addressController.ListAddresses)
	r.Post("/api/customers/{id}/addresses", addressController.AddAddress)
	r.Put("/api/addresses/{addressId}", addressController.UpdateAddress)
	r.Delete("/api/addresses/{addressId}", addressController.DeleteAddress)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Println("🚀 Server running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
