package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/railconnect/reservation-service/internal/fare"
	"github.com/railconnect/reservation-service/internal/models"
	"github.com/railconnect/reservation-service/internal/pnr"
	"github.com/railconnect/reservation-service/internal/registry"
	"github.com/railconnect/reservation-service/internal/store"
	"github.com/railconnect/reservation-service/internal/waitlist"
)

var (
	ErrTrainNotFound = errors.New("train not found")
	ErrPNRNotFound   = errors.New("no booking found for pnr")
	ErrTrainExists   = errors.New("train id already registered")
)

// EventPublisher pushes booking lifecycle events to a broker.
// A nil publisher disables eventing.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

type ReservationService interface {
	LoadState(ctx context.Context) error
	BookTicket(ctx context.Context, trainID string, req models.Passenger) (*models.Passenger, error)
	CancelTicket(ctx context.Context, pnrCode string) (*models.Passenger, error)
	AddTrain(ctx context.Context, t models.Train) error
	FindPassenger(pnrCode string) (*models.Passenger, bool)
	ListBookings(trainID string) []models.Passenger
	FindTrain(trainID string) (*models.Train, bool)
	SearchTrains(source, destination string) []models.Train
	ListTrains() []models.Train
	Waitlist() []models.Passenger
}

// reservationService owns the canonical in-memory state: the train
// registry, the confirmed passenger set and the waiting queue. Every
// mutating operation runs under one mutex so cancellation's
// remove-decrement-promote sequence can never interleave with a
// booking, and writes through to the snapshot store before returning.
type reservationService struct {
	mu        sync.Mutex
	trains    *registry.Registry
	queue     *waitlist.Queue
	store     store.Store
	publisher EventPublisher
	confirmed []models.Passenger
}

func NewReservationService(trains *registry.Registry, queue *waitlist.Queue, st store.Store, publisher EventPublisher) ReservationService {
	return &reservationService{
		trains:    trains,
		queue:     queue,
		store:     st,
		publisher: publisher,
	}
}

// defaultTrains is the fixture set seeded when no snapshot exists yet.
func defaultTrains() []models.Train {
	return []models.Train{
		{TrainID: "123A", Name: "Express One", Source: "Mumbai", Destination: "Pune", TotalSeats: 100, BaseFare: 200},
		{TrainID: "456B", Name: "Coastal Mail", Source: "Chennai", Destination: "Bangalore", TotalSeats: 80, BaseFare: 350},
		{TrainID: "789C", Name: "InterCity", Source: "Delhi", Destination: "Agra", TotalSeats: 120, BaseFare: 150},
	}
}

// LoadState restores the last snapshot, seeding the default trains
// when nothing was saved yet or the saved data cannot be decoded.
func (s *reservationService) LoadState(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNotExist) {
			log.Printf("[engine] snapshot unreadable, seeding defaults: %v", err)
		}
		for _, t := range defaultTrains() {
			s.trains.Add(t)
		}
		s.persist(ctx)
		return nil
	}

	for _, t := range snap.Trains {
		s.trains.Add(t)
	}
	s.confirmed = make([]models.Passenger, 0, len(snap.Confirmed))
	for _, p := range snap.Confirmed {
		p.Status = models.StatusConfirmed
		s.confirmed = append(s.confirmed, p)
	}
	s.queue.Restore(snap.Waiting)
	return nil
}

// BookTicket seats the passenger on the given train when capacity
// allows, otherwise places the request on the waiting queue. The
// returned record's Status tells which happened.
func (s *reservationService) BookTicket(ctx context.Context, trainID string, req models.Passenger) (*models.Passenger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booked, err := s.bookLocked(trainID, req)
	if err != nil {
		return nil, err
	}

	s.persist(ctx)
	s.publish("booking."+string(booked.Status), booked)
	return booked, nil
}

// bookLocked runs the booking algorithm with the engine lock already
// held; promotion during cancellation reuses it directly.
func (s *reservationService) bookLocked(trainID string, req models.Passenger) (*models.Passenger, error) {
	t := s.trains.FindByID(trainID)
	if t == nil {
		return nil, ErrTrainNotFound
	}

	if t.HasFreeSeat() {
		t.BookedSeats++
		p := req
		p.TrainID = trainID
		// The new occupancy count doubles as the seat number, matching
		// the documented behavior (seat numbers are reused across
		// cancel/rebook cycles).
		p.SeatNo = t.BookedSeats
		p.Fare = fare.Compute(t.BaseFare, t.BookedSeats)
		p.PNR = pnr.New()
		p.Status = models.StatusConfirmed
		s.confirmed = append(s.confirmed, p)
		return &p, nil
	}

	p := req
	p.Status = models.StatusWaitlisted
	s.queue.Enqueue(p)
	return &p, nil
}

// CancelTicket removes the confirmed booking with the given PNR, frees
// its seat and promotes the longest-waiting request if there is one.
// The whole sequence runs inside one critical section.
func (s *reservationService) CancelTicket(ctx context.Context, pnrCode string) (*models.Passenger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.confirmed {
		if s.confirmed[i].PNR == pnrCode {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrPNRNotFound
	}

	cancelled := s.confirmed[idx]
	s.confirmed = append(s.confirmed[:idx], s.confirmed[idx+1:]...)

	if t := s.trains.FindByID(cancelled.TrainID); t != nil && t.BookedSeats > 0 {
		t.BookedSeats--
	}

	var promoted *models.Passenger
	if w, ok := s.queue.DequeueFront(); ok {
		// A request without a stated train takes the just-freed one;
		// otherwise the promotion targets the request's own train,
		// which may be full and re-queues it.
		if w.TrainID == "" {
			w.TrainID = cancelled.TrainID
		}
		res, err := s.bookLocked(w.TrainID, w)
		switch {
		case errors.Is(err, ErrTrainNotFound):
			// Never drop a waiting passenger: put the request back.
			log.Printf("[engine] promotion target %s no longer exists, re-queueing %s", w.TrainID, w.Name)
			w.Status = models.StatusWaitlisted
			s.queue.Enqueue(w)
		case err == nil && res.Status == models.StatusConfirmed:
			promoted = res
		}
	}

	s.persist(ctx)

	cancelled.Status = models.StatusCancelled
	s.publish("booking.cancelled", &cancelled)
	if promoted != nil {
		s.publish("booking.promoted", promoted)
	}
	return &cancelled, nil
}

// AddTrain registers a new train. Duplicate IDs are rejected here so
// the registry itself can stay append-only.
func (s *reservationService) AddTrain(ctx context.Context, t models.Train) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.trains.FindByID(t.TrainID) != nil {
		return ErrTrainExists
	}
	s.trains.Add(t)
	s.persist(ctx)
	return nil
}

func (s *reservationService) FindPassenger(pnrCode string) (*models.Passenger, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.confirmed {
		if s.confirmed[i].PNR == pnrCode {
			p := s.confirmed[i]
			return &p, true
		}
	}
	return nil, false
}

// ListBookings returns the confirmed records, filtered to one train
// when trainID is non-empty.
func (s *reservationService) ListBookings(trainID string) []models.Passenger {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := []models.Passenger{}
	for _, p := range s.confirmed {
		if trainID == "" || p.TrainID == trainID {
			res = append(res, p)
		}
	}
	return res
}

func (s *reservationService) FindTrain(trainID string) (*models.Train, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.trains.FindByID(trainID)
	if t == nil {
		return nil, false
	}
	tc := *t
	return &tc, true
}

func (s *reservationService) SearchTrains(source, destination string) []models.Train {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trains.Search(source, destination)
}

func (s *reservationService) ListTrains() []models.Train {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trains.All()
}

func (s *reservationService) Waitlist() []models.Passenger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Snapshot()
}

// persist writes the full state through to the store. A failed save is
// logged and not surfaced: the in-memory mutation already happened and
// the next successful save closes the gap.
func (s *reservationService) persist(ctx context.Context) {
	snap := &store.Snapshot{
		Trains:    s.trains.All(),
		Confirmed: append([]models.Passenger(nil), s.confirmed...),
		Waiting:   s.queue.Snapshot(),
	}
	if err := s.store.Save(ctx, snap); err != nil {
		log.Printf("[engine] snapshot save failed: %v", err)
	}
}

func (s *reservationService) publish(routingKey string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(routingKey, payload); err != nil {
		log.Printf("[events] publish %s failed: %v", routingKey, err)
	}
}
