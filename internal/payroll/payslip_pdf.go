package payroll

import (
	"bytes"
	"fmt"
	"strings"
)

// buildPayslipPDF renders a one-page payslip without an external PDF
// dependency. The layout is a plain line list in Helvetica.
func buildPayslipPDF(p Payslip) ([]byte, error) {
	lines := []string{
		"Payslip " + p.ID.String(),
		fmt.Sprintf("Employee: %s", p.EmployeeID),
		fmt.Sprintf("Period: %s", p.PayrollPeriodID),
		"",
		fmt.Sprintf("Base salary: %.2f %s", p.BaseSalary, p.Currency),
		fmt.Sprintf("Overtime: %.2f", p.OvertimePay),
		fmt.Sprintf("Bonuses: %.2f", p.Bonuses),
		fmt.Sprintf("Allowances: %.2f", p.Allowances),
		fmt.Sprintf("Gross: %.2f", p.GrossSalary),
		"",
		fmt.Sprintf("Tax: %.2f", p.Tax),
		fmt.Sprintf("Social security: %.2f", p.SocialSecurity),
		fmt.Sprintf("Other deductions: %.2f", p.OtherDeductions),
		fmt.Sprintf("Total deductions: %.2f", p.TotalDeductions),
		"",
		fmt.Sprintf("Net: %.2f %s", p.NetSalary, p.Currency),
		fmt.Sprintf("Status: %s", p.Status),
	}
	if p.PaymentDate != nil {
		lines = append(lines, fmt.Sprintf("Paid on: %s (%s)", p.PaymentDate.Format(dateLayout), p.PaymentReference))
	}
	return renderLinesPDF(lines)
}

func renderLinesPDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Payslip"}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 12 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
