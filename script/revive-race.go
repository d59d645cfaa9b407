package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"
)

// registerRequest is the POST /user payload
type registerRequest struct {
	Name string `json:"name"`
}

// registerResponse is the subset of the POST /user response we need
type registerResponse struct {
	UserID string `json:"userId"`
}

// adjustRequest is the POST /user/{id}/transaction payload
type adjustRequest struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

// changeResponse is a settled coin change
type changeResponse struct {
	Applied  int64 `json:"applied"`
	Balance  int64 `json:"balance"`
	Revived  bool  `json:"revived"`
	GameOver bool  `json:"gameOver"`
}

// balanceResponse is the GET /user/{id}/balance body
type balanceResponse struct {
	Balance    int64  `json:"balance"`
	HasRevived bool   `json:"hasRevived"`
	State      string `json:"state"`
}

// TestResult contains the outcome of one racing request
type TestResult struct {
	GuestID      string
	Success      bool
	Revived      bool
	GameOver     bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// GuestStats aggregates the racing requests of one guest
type GuestStats struct {
	Revived  int
	GameOver int
	Failed   int
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests int
	Failed        int
	TotalTime     time.Duration
	ResponseTimes []time.Duration
	ErrorCounts   map[string]int
	Guests        map[string]*GuestStats
	Lock          sync.Mutex
}

func main() {
	guests := flag.Int("g", 5, "Number of guests to register")
	racers := flag.Int("c", 10, "Concurrent floor hits per guest")
	loss := flag.Int64("loss", 5, "Coins lost by each racing request")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	fmt.Printf("Registering %d guests\n", *guests)
	ids := make([]string, 0, *guests)
	for i := 0; i < *guests; i++ {
		id, err := registerGuest(client, *baseURL, fmt.Sprintf("racer-%d-%d", time.Now().Unix(), i))
		if err != nil {
			fmt.Fprintf(os.Stderr, "register failed: %v\n", err)
			os.Exit(1)
		}
		// Leave one coin so every racer hits the floor
		if err := drainToOne(client, *baseURL, id); err != nil {
			fmt.Fprintf(os.Stderr, "drain failed for %s: %v\n", id, err)
			os.Exit(1)
		}
		ids = append(ids, id)
	}

	stats := &TestStats{
		TotalRequests: *guests * *racers,
		ErrorCounts:   make(map[string]int),
		Guests:        make(map[string]*GuestStats),
	}
	for _, id := range ids {
		stats.Guests[id] = &GuestStats{}
	}

	fmt.Printf("Firing %d concurrent -%d hits per guest\n", *racers, *loss)

	results := make(chan TestResult, stats.TotalRequests)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for _, id := range ids {
		for r := 0; r < *racers; r++ {
			wg.Add(1)
			go func(guestID string) {
				defer wg.Done()
				<-start
				results <- hitFloor(client, *baseURL, guestID, *loss)
			}(id)
		}
	}

	startTime := time.Now()
	close(start)
	wg.Wait()
	close(results)
	stats.TotalTime = time.Since(startTime)

	for result := range results {
		guest := stats.Guests[result.GuestID]
		stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
		switch {
		case !result.Success:
			stats.Failed++
			guest.Failed++
			errMsg := "unknown"
			if result.Error != nil {
				errMsg = result.Error.Error()
			}
			stats.ErrorCounts[errMsg]++
		case result.Revived:
			guest.Revived++
		case result.GameOver:
			guest.GameOver++
		}
	}

	ok := printResults(client, *baseURL, ids, stats)
	if !ok {
		os.Exit(1)
	}
}

func postJSON(client *http.Client, url string, body any, out any) (int, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func registerGuest(client *http.Client, baseURL, name string) (string, error) {
	var resp registerResponse
	if _, err := postJSON(client, baseURL+"/user", registerRequest{Name: name}, &resp); err != nil {
		return "", err
	}
	return resp.UserID, nil
}

func fetchBalance(client *http.Client, baseURL, guestID string) (*balanceResponse, error) {
	resp, err := client.Get(fmt.Sprintf("%s/user/%s/balance", baseURL, guestID))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	var out balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func drainToOne(client *http.Client, baseURL, guestID string) error {
	current, err := fetchBalance(client, baseURL, guestID)
	if err != nil {
		return err
	}
	if current.Balance <= 1 {
		return nil
	}
	_, err = postJSON(client, fmt.Sprintf("%s/user/%s/transaction", baseURL, guestID),
		adjustRequest{Amount: 1 - current.Balance, Description: "race setup"}, nil)
	return err
}

func hitFloor(client *http.Client, baseURL, guestID string, loss int64) TestResult {
	var change changeResponse
	startTime := time.Now()
	status, err := postJSON(client, fmt.Sprintf("%s/user/%s/transaction", baseURL, guestID),
		adjustRequest{Amount: -loss, Description: "race"}, &change)

	return TestResult{
		GuestID:      guestID,
		Success:      err == nil,
		Revived:      change.Revived,
		GameOver:     change.GameOver,
		ResponseTime: time.Since(startTime),
		StatusCode:   status,
		Error:        err,
	}
}

// printResults reports the race and checks each guest was revived at most once
func printResults(client *http.Client, baseURL string, ids []string, stats *TestStats) bool {
	var p50, p95, p99 time.Duration
	if n := len(stats.ResponseTimes); n > 0 {
		sorted := append([]time.Duration(nil), stats.ResponseTimes...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		p50 = sorted[n*50/100]
		p95 = sorted[n*95/100]
		p99 = sorted[n*99/100]
	}

	fmt.Println("\n================= RACE RESULTS =================")
	fmt.Printf("Total Requests:  %d\n", stats.TotalRequests)
	fmt.Printf("Failed Requests: %d\n", stats.Failed)
	fmt.Printf("Total Time:      %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("P50 / P95 / P99: %v / %v / %v\n", p50, p95, p99)

	fmt.Println("\n----------------- PER GUEST -----------------")
	ok := true
	for _, id := range ids {
		guest := stats.Guests[id]
		final, err := fetchBalance(client, baseURL, id)
		if err != nil {
			fmt.Printf("%s: balance read failed: %v\n", id, err)
			ok = false
			continue
		}

		verdict := "OK"
		if guest.Revived > 1 || (guest.Revived == 1 && !final.HasRevived) {
			verdict = "DOUBLE REVIVE"
			ok = false
		}
		fmt.Printf("%s: revived=%d gameOver=%d failed=%d final=%d state=%s %s\n",
			id, guest.Revived, guest.GameOver, guest.Failed, final.Balance, final.State, verdict)
	}

	if stats.Failed > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}

	fmt.Println("\n================= CONCLUSION =================")
	if ok {
		fmt.Println("Every guest was revived at most once")
	} else {
		fmt.Println("Revive invariant violated")
	}
	return ok
}
