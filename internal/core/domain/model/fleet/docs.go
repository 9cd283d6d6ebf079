// Package fleet holds the reservable resources a shipment needs: drivers and
// vehicles. Each carries an availability flag that only the order and shipment
// lifecycles flip; master-data edits never touch it.
package fleet
