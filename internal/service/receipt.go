package service

import (
	"context"
	"fmt"
	"strings"
)

const receiptWidth = 32

// Receipt renders a plain text receipt for an order
func (s *OrderService) Receipt(ctx context.Context, id int64) (string, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	lines, err := order.Lines()
	if err != nil {
		return "", fmt.Errorf("failed to read order items: %w", err)
	}

	rule := strings.Repeat("=", receiptWidth) + "\n"
	thin := strings.Repeat("-", receiptWidth) + "\n"

	var sb strings.Builder
	sb.WriteString(rule)
	sb.WriteString(center("QANYARE RESTAURANT"))
	sb.WriteString(center("RECEIPT"))
	sb.WriteString(rule)
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Order #: %d\n", order.ID)
	fmt.Fprintf(&sb, "Date: %s\n", order.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "Customer: %s\n", order.CustomerName)
	fmt.Fprintf(&sb, "Status: %s\n", order.Status)
	sb.WriteString("\n")

	sb.WriteString("Items:\n")
	sb.WriteString(thin)
	for _, line := range lines {
		fmt.Fprintf(&sb, "%dx %s\n", line.Quantity, line.Name)
		fmt.Fprintf(&sb, "  KSh %d\n", line.Price*int64(line.Quantity))
	}
	if order.Notes != nil && *order.Notes != "" {
		fmt.Fprintf(&sb, "  * %s\n", *order.Notes)
	}

	sb.WriteString(thin)
	fmt.Fprintf(&sb, "Total: KSh %d\n", order.Total)
	sb.WriteString("\n")

	sb.WriteString(rule)
	sb.WriteString(center("Mahadsanid! Thank You!"))
	sb.WriteString(rule)

	return sb.String(), nil
}

func center(text string) string {
	pad := (receiptWidth - len(text)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + text + "\n"
}
