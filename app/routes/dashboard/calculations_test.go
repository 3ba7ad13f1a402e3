package dashboard

import (
	"reflect"
	"testing"
	"time"

	"github.com/mattmosz/APP-TESO/app/models"
)

func student(id, name string) *models.Student {
	return &models.Student{ID: id, FullName: name, IsActive: true}
}

func feeActivity(id, name string, fee float64) *models.Activity {
	return &models.Activity{
		ID: id, Name: name, RequiresFee: true, FeePerStudent: fee,
		Date: time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), IsActive: true,
	}
}

func payment(studentID, activityID string, amount float64) *models.Payment {
	return &models.Payment{StudentID: studentID, ActivityID: activityID, Amount: amount}
}

var (
	ana  = student("s-ana", "Ana Torres")
	luis = student("s-luis", "Luis Gómez")
)

func TestPercentOf(t *testing.T) {
	tests := []struct {
		part, whole float64
		want        int
	}{
		{0, 50, 0},
		{30, 50, 60},
		{50, 50, 100},
		{60, 50, 100}, // overpayment caps at 100
		{1, 3, 33},
		{2, 3, 67},
		{0, 0, 0},  // zero-fee guard
		{10, 0, 0}, // zero-fee guard with money already collected
	}
	for _, tt := range tests {
		if got := percentOf(tt.part, tt.whole); got != tt.want {
			t.Errorf("percentOf(%v, %v) = %d, want %d", tt.part, tt.whole, got, tt.want)
		}
	}
}

func TestPercentOfMonotone(t *testing.T) {
	prev := 0
	for paid := 0.0; paid <= 75; paid += 2.5 {
		got := percentOf(paid, 50)
		if got < prev {
			t.Fatalf("percentOf(%v, 50) = %d decreased below %d", paid, got, prev)
		}
		if paid >= 50 && got != 100 {
			t.Errorf("percentOf(%v, 50) = %d, want 100 once fully paid", paid, got)
		}
		prev = got
	}
}

func TestSingleDebtorScenario(t *testing.T) {
	students := []*models.Student{ana, luis}
	activities := []*models.Activity{feeActivity("a-exc", "Excursión", 50)}
	payments := []*models.Payment{payment(ana.ID, "a-exc", 50)}

	report := BuildDebtorsReport(students, activities, payments)
	if len(report) != 1 {
		t.Fatalf("got %d report entries, want 1", len(report))
	}

	entry := report[0]
	if entry.Activity.TotalExpected != 100 {
		t.Errorf("total_expected = %v, want 100 (fee x roster size)", entry.Activity.TotalExpected)
	}
	if entry.Activity.TotalCollected != 50 {
		t.Errorf("total_collected = %v, want 50", entry.Activity.TotalCollected)
	}
	if entry.Activity.Shortfall != 50 {
		t.Errorf("shortfall = %v, want 50", entry.Activity.Shortfall)
	}
	if entry.Activity.PercentCollected != 50 {
		t.Errorf("percent_collected = %d, want 50", entry.Activity.PercentCollected)
	}

	if entry.DebtorCount != 1 || len(entry.Debtors) != 1 {
		t.Fatalf("got %d debtors, want only Luis", len(entry.Debtors))
	}
	debtor := entry.Debtors[0]
	if debtor.StudentID != luis.ID {
		t.Errorf("debtor = %s, want Luis; Ana paid in full and must not be listed", debtor.FullName)
	}
	if debtor.AmountPaid != 0 || debtor.AmountOwed != 50 || debtor.PercentPaid != 0 {
		t.Errorf("debtor entry = %+v, want paid 0, owed 50, percent 0", debtor)
	}
}

func TestPartialPaymentScenario(t *testing.T) {
	students := []*models.Student{ana, luis}
	activities := []*models.Activity{feeActivity("a-exc", "Excursión", 50)}
	payments := []*models.Payment{
		payment(ana.ID, "a-exc", 50),
		payment(luis.ID, "a-exc", 30),
	}

	report := BuildDebtorsReport(students, activities, payments)
	if len(report) != 1 {
		t.Fatalf("got %d report entries, want 1", len(report))
	}

	entry := report[0]
	if entry.Activity.TotalCollected != 80 {
		t.Errorf("total_collected = %v, want 80", entry.Activity.TotalCollected)
	}
	if len(entry.Debtors) != 1 {
		t.Fatalf("got %d debtors, want 1", len(entry.Debtors))
	}
	debtor := entry.Debtors[0]
	if debtor.AmountPaid != 30 || debtor.AmountOwed != 20 || debtor.PercentPaid != 60 {
		t.Errorf("debtor entry = %+v, want paid 30, owed 20, percent 60", debtor)
	}
}

func TestDeletingPaymentRestoresDebt(t *testing.T) {
	students := []*models.Student{ana, luis}
	activities := []*models.Activity{feeActivity("a-exc", "Excursión", 50)}

	// Luis's 30 was recorded, then deleted again
	payments := []*models.Payment{payment(ana.ID, "a-exc", 50)}

	report := BuildDebtorsReport(students, activities, payments)
	debtor := report[0].Debtors[0]
	if debtor.StudentID != luis.ID || debtor.AmountPaid != 0 || debtor.AmountOwed != 50 || debtor.PercentPaid != 0 {
		t.Errorf("debtor entry = %+v, want Luis restored to paid 0, owed 50, percent 0", debtor)
	}
}

func TestFeeFreeActivityExcluded(t *testing.T) {
	students := []*models.Student{ana, luis}
	free := feeActivity("a-free", "Paseo al parque", 25)
	free.RequiresFee = false
	activities := []*models.Activity{free}

	// Even stray payments toward a fee-free activity must not surface it
	payments := []*models.Payment{payment(ana.ID, "a-free", 25)}

	report := BuildDebtorsReport(students, activities, payments)
	if len(report) != 0 {
		t.Errorf("got %d report entries, want 0 for fee-free activity", len(report))
	}
}

func TestFullyCollectedActivityOmitted(t *testing.T) {
	students := []*models.Student{ana, luis}
	activities := []*models.Activity{feeActivity("a-exc", "Excursión", 50)}
	payments := []*models.Payment{
		payment(ana.ID, "a-exc", 50),
		payment(luis.ID, "a-exc", 50),
	}

	report := BuildDebtorsReport(students, activities, payments)
	if len(report) != 0 {
		t.Errorf("got %d report entries, want 0 once everyone paid", len(report))
	}
}

func TestZeroFeeGuard(t *testing.T) {
	students := []*models.Student{ana, luis}
	zeroFee := feeActivity("a-zero", "Sin cuota definida", 0)
	zeroFee.TotalExpected = 40 // explicit target, fee still unset
	activities := []*models.Activity{zeroFee}

	report := BuildDebtorsReport(students, activities, nil)
	if len(report) != 1 {
		t.Fatalf("got %d report entries, want 1 (shortfall of 40)", len(report))
	}
	entry := report[0]
	if entry.Activity.PercentCollected != 0 {
		t.Errorf("percent_collected = %d, want 0", entry.Activity.PercentCollected)
	}
	if len(entry.Debtors) != 0 {
		t.Errorf("got %d debtors, want 0; nobody owes a zero fee", len(entry.Debtors))
	}
}

func TestExplicitExpectedTotalWins(t *testing.T) {
	students := []*models.Student{ana, luis}
	a := feeActivity("a-exc", "Excursión", 50)
	a.TotalExpected = 80 // treasurer lowered the target below fee x roster
	activities := []*models.Activity{a}
	payments := []*models.Payment{payment(ana.ID, "a-exc", 50)}

	report := BuildDebtorsReport(students, activities, payments)
	entry := report[0]
	if entry.Activity.TotalExpected != 80 {
		t.Errorf("total_expected = %v, want explicit 80", entry.Activity.TotalExpected)
	}
	if entry.Activity.Shortfall != 30 {
		t.Errorf("shortfall = %v, want 30", entry.Activity.Shortfall)
	}
	if entry.Activity.PercentCollected != 63 { // round(100*50/80)
		t.Errorf("percent_collected = %d, want 63", entry.Activity.PercentCollected)
	}
}

func TestOrphanedPaymentsCountTowardCollection(t *testing.T) {
	// Payer was deactivated after paying; only Ana and Luis remain active
	students := []*models.Student{ana, luis}
	activities := []*models.Activity{feeActivity("a-exc", "Excursión", 50)}
	payments := []*models.Payment{
		payment(ana.ID, "a-exc", 50),
		payment("s-gone", "a-exc", 50),
	}

	report := BuildDebtorsReport(students, activities, payments)
	entry := report[0]
	if entry.Activity.TotalCollected != 100 {
		t.Errorf("total_collected = %v, want 100 including the orphaned payment", entry.Activity.TotalCollected)
	}
	for _, d := range entry.Debtors {
		if d.StudentID == "s-gone" {
			t.Error("deactivated payer must not appear as a debtor")
		}
	}
}

func TestCollectedEqualsSumOfStudentPayments(t *testing.T) {
	students := []*models.Student{ana, luis, student("s-eva", "Eva Ruiz")}
	activities := []*models.Activity{feeActivity("a-exc", "Excursión", 50)}
	payments := []*models.Payment{
		payment(ana.ID, "a-exc", 20),
		payment(ana.ID, "a-exc", 15),
		payment(luis.ID, "a-exc", 30),
	}

	report := BuildDebtorsReport(students, activities, payments)
	entry := report[0]

	perStudent := map[string]float64{}
	for _, p := range payments {
		perStudent[p.StudentID] += p.Amount
	}
	var sum float64
	for _, amount := range perStudent {
		sum += amount
	}
	if entry.Activity.TotalCollected != sum {
		t.Errorf("total_collected = %v, want decomposition sum %v", entry.Activity.TotalCollected, sum)
	}

	// Ana's two partial payments accumulate: 35 of 50 paid
	for _, d := range entry.Debtors {
		if d.StudentID == ana.ID {
			if d.AmountPaid != 35 || d.AmountOwed != 15 || d.PercentPaid != 70 {
				t.Errorf("ana entry = %+v, want paid 35, owed 15, percent 70", d)
			}
		}
	}
}

func TestReportIsIdempotent(t *testing.T) {
	students := []*models.Student{ana, luis}
	activities := []*models.Activity{
		feeActivity("a-exc", "Excursión", 50),
		feeActivity("a-rifa", "Rifa", 10),
	}
	payments := []*models.Payment{
		payment(ana.ID, "a-exc", 50),
		payment(luis.ID, "a-rifa", 10),
	}

	first := BuildDebtorsReport(students, activities, payments)
	second := BuildDebtorsReport(students, activities, payments)
	if !reflect.DeepEqual(first, second) {
		t.Error("recomputing the report on unchanged data changed the output")
	}
}

func TestEmptyInputs(t *testing.T) {
	if report := BuildDebtorsReport(nil, nil, nil); len(report) != 0 {
		t.Errorf("got %d report entries on empty inputs, want 0", len(report))
	}
}
